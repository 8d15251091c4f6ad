package main

import (
	"PongSim/core"
	"PongSim/logger"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

func main() {
	flags := pflag.NewFlagSet("pong", pflag.ExitOnError)
	configPath := flags.String("config", "properties/game.properties", "game settings file")
	logConfigPath := flags.String("log-config", "logger.properties", "logger settings file")
	keymapPath := flags.String("keymap", "", "TOML keymap file, default bindings when empty")
	frontend := flags.String("frontend", FrontendTerminal, "terminal or window")
	keyHold := flags.Duration("key-hold", defaultKeyHold, "terminal only: a key counts as released after this long without repeats")
	flags.String("policy", "", "bounce policy: flat, escalating or random-wall")
	_ = flags.Parse(os.Args[1:])

	if err := logger.Log.Init(*logConfigPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	v := viper.New()
	if err := v.BindPFlag("BOUNCE_POLICY", flags.Lookup("policy")); err != nil {
		logger.Log.Fatal(err.Error())
	}
	settings, err := core.ReadProperties(v, *configPath)
	if err != nil {
		logger.Log.Fatal(fmt.Sprintf(logger.SettingsLoadFailedMsg, err))
	}

	keymap := core.DefaultKeymap()
	if *keymapPath != "" {
		keymap, err = core.LoadKeymap(*keymapPath)
		if err != nil {
			logger.Log.Fatal(fmt.Sprintf(logger.KeymapLoadFailedMsg, *keymapPath, err))
		}
	}

	s, err := newSession(settings, keymap)
	if err != nil {
		logger.Log.Fatal(err.Error())
	}

	switch *frontend {
	case FrontendTerminal:
		logger.Log.SetEcho(false)
		err = runTerminal(s, *keyHold)
	case FrontendWindow:
		err = runWindow(s)
	default:
		err = fmt.Errorf("unknown frontend %q", *frontend)
	}
	s.close()

	if err != nil {
		logger.Log.Error(err.Error())
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
