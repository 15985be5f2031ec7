package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "KEYCALC_"

// ApplyEnv overlays environment variables onto cfg:
//
//	KEYCALC_LOG_LEVEL       logging.level
//	KEYCALC_LOG_FILE        logging.file
//	KEYCALC_ERROR_TEXT      display.error_text
//	KEYCALC_MAX_DIGITS      display.max_digits
//	KEYCALC_HISTORY_LIMIT   display.history_limit
//	KEYCALC_MOUSE           display.mouse
//	KEYCALC_PLUGINS         plugins.scripts (comma separated)
//
// Empty string values are treated as set.
func ApplyEnv(cfg *Config, prefix string) error {
	if v, ok := os.LookupEnv(prefix + "LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := os.LookupEnv(prefix + "LOG_FILE"); ok {
		cfg.Logging.File = v
	}
	if v, ok := os.LookupEnv(prefix + "ERROR_TEXT"); ok {
		cfg.Display.ErrorText = v
	}
	if err := envInt(prefix+"MAX_DIGITS", &cfg.Display.MaxDigits); err != nil {
		return err
	}
	if err := envInt(prefix+"HISTORY_LIMIT", &cfg.Display.HistoryLimit); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(prefix + "MOUSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sMOUSE: %w", prefix, err)
		}
		cfg.Display.Mouse = b
	}
	if v, ok := os.LookupEnv(prefix + "PLUGINS"); ok {
		cfg.Plugins.Scripts = splitList(v)
	}
	return nil
}

func envInt(name string, dst *int) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = n
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
