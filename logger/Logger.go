package logger

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = NewLogger()

type Logger struct {
	entry *logrus.Entry
	echo  bool
}

func NewLogger() *Logger {
	return &Logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

type properties struct {
	logFilename string
	maxSize     int
	maxBackups  int
	maxAge      int
	compress    bool
	console     bool
	level       string
}

func readLoggerProperties(path string) (properties, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("properties")

	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("compress", false)
	v.SetDefault("console", false)
	v.SetDefault("level", "Info")

	if err := v.ReadInConfig(); err != nil {
		return properties{}, fmt.Errorf("read logger config %s: %w", path, err)
	}

	return properties{
		logFilename: cast.ToString(v.Get("logFilename")),
		maxSize:     cast.ToInt(v.Get("maxSize")),
		maxBackups:  cast.ToInt(v.Get("maxBackups")),
		maxAge:      cast.ToInt(v.Get("maxAge")),
		compress:    cast.ToBool(v.Get("compress")),
		console:     cast.ToBool(v.Get("console")),
		level:       cast.ToString(v.Get("level")),
	}, nil
}

// Init points the logger at the rotating file described by the properties file at path.
func (l *Logger) Init(path string) error {
	props, err := readLoggerProperties(path)
	if err != nil {
		return err
	}

	loggerConfig := &lumberjack.Logger{
		Filename:   props.logFilename,
		MaxSize:    props.maxSize,
		MaxBackups: props.maxBackups,
		MaxAge:     props.maxAge,
		Compress:   props.compress,
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(loggerConfig)
	logrus.SetLevel(parseLevel(props.level))
	l.echo = props.console

	return nil
}

func parseLevel(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// SetEcho toggles the stdout copy of every entry. Hosts that own the terminal turn it off.
func (l *Logger) SetEcho(echo bool) {
	l.echo = echo
}

// WithSession stamps every following entry with the game session id.
func (l *Logger) WithSession(sessionId string) {
	l.entry = l.entry.WithField("session", sessionId)
}

func (l *Logger) Trace(message string) {
	l.entry.Trace(message)
}

func (l *Logger) Info(message string) {
	l.entry.Info(message)
	l.print("Info:", message)
}

func (l *Logger) Error(message string) {
	l.entry.Error(message)
	l.print("Error:", message)
}

func (l *Logger) Debug(message string) {
	l.entry.Debug(message)
	l.print("Debug:", message)
}

func (l *Logger) Warn(message string) {
	l.entry.Warn(message)
	l.print("Warn:", message)
}

func (l *Logger) Fatal(message string) {
	l.print("Fatal:", message)
	l.entry.Fatal(message)
}

func (l *Logger) print(prefix, message string) {
	if l.echo {
		fmt.Println(prefix, message)
	}
}
