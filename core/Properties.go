package core

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

func setPropertyDefaults(v *viper.Viper) {
	d := DefaultSettings()

	v.SetDefault("ARENA_WIDTH", d.ArenaWidth)
	v.SetDefault("ARENA_HEIGHT", d.ArenaHeight)
	v.SetDefault("BARRIER_THICKNESS", d.BarrierThickness)
	v.SetDefault("PADDLE_WIDTH", d.PaddleWidth)
	v.SetDefault("PADDLE_HEIGHT", d.PaddleHeight)
	v.SetDefault("PADDLE_INSET", d.PaddleInset)
	v.SetDefault("PADDLE_SPEED", d.PaddleSpeed)
	v.SetDefault("MIN_PADDLE_Y", d.MinPaddleY)
	v.SetDefault("BALL_RADIUS", d.BallRadius)
	v.SetDefault("INITIAL_SPEED", d.InitialSpeed)
	v.SetDefault("SPEED_INCREMENT", d.SpeedIncrement)
	v.SetDefault("BOUNCE_POLICY", d.BouncePolicy)
	v.SetDefault("WALL_MARGIN", d.WallMargin)
	v.SetDefault("TICK_MILLIS", d.TickPeriod.Milliseconds())
	v.SetDefault("WINNING_SCORE", d.WinningScore)
	v.SetDefault("SEED", d.Seed)
}

// ReadProperties loads game settings from the properties file at path, layered over the
// defaults and whatever v already carries (bound flags). An empty path reads defaults only.
// MAX_PADDLE_Y defaults to mirror MIN_PADDLE_Y against the floor.
func ReadProperties(v *viper.Viper, path string) (Settings, error) {
	setPropertyDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("properties")
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read properties %s: %w", path, err)
		}
	}

	r := &propertyReader{v: v}
	s := Settings{
		ArenaWidth:       r.toFloat("ARENA_WIDTH"),
		ArenaHeight:      r.toFloat("ARENA_HEIGHT"),
		BarrierThickness: r.toFloat("BARRIER_THICKNESS"),
		PaddleWidth:      r.toFloat("PADDLE_WIDTH"),
		PaddleHeight:     r.toFloat("PADDLE_HEIGHT"),
		PaddleInset:      r.toFloat("PADDLE_INSET"),
		PaddleSpeed:      r.toFloat("PADDLE_SPEED"),
		MinPaddleY:       r.toFloat("MIN_PADDLE_Y"),
		BallRadius:       r.toFloat("BALL_RADIUS"),
		InitialSpeed:     r.toFloat("INITIAL_SPEED"),
		SpeedIncrement:   r.toFloat("SPEED_INCREMENT"),
		BouncePolicy:     cast.ToString(v.Get("BOUNCE_POLICY")),
		WallMargin:       r.toFloat("WALL_MARGIN"),
		TickPeriod:       time.Duration(r.toInt64("TICK_MILLIS")) * time.Millisecond,
		WinningScore:     r.toInt("WINNING_SCORE"),
		Seed:             r.toInt64("SEED"),
	}

	if v.Get("MAX_PADDLE_Y") != nil {
		s.MaxPaddleY = r.toFloat("MAX_PADDLE_Y")
	} else {
		s.MaxPaddleY = s.ArenaHeight - s.MinPaddleY
	}
	if r.err != nil {
		return Settings{}, r.err
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// propertyReader converts property values and keeps the first conversion failure, so a
// malformed value is reported instead of read as zero.
type propertyReader struct {
	v   *viper.Viper
	err error
}

func (r *propertyReader) toFloat(key string) float64 {
	f, err := cast.ToFloat64E(r.v.Get(key))
	r.fail(key, err)
	return f
}

func (r *propertyReader) toInt(key string) int {
	i, err := cast.ToIntE(r.v.Get(key))
	r.fail(key, err)
	return i
}

func (r *propertyReader) toInt64(key string) int64 {
	i, err := cast.ToInt64E(r.v.Get(key))
	r.fail(key, err)
	return i
}

func (r *propertyReader) fail(key string, err error) {
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("%w: %s: %v", ErrInvalidSettings, key, err)
	}
}
