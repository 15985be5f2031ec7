// Package config provides the configuration system for keycalc.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Arguments  │  ← Highest priority (applied by app)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← KEYCALC_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← keycalc.toml or keycalc.yaml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Basic Usage
//
//	cfg, err := config.LoadAll("keycalc.toml", config.EnvPrefix)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Display.ErrorText)
//
// # File Formats
//
// The format is chosen by extension: .yaml and .yml are decoded as YAML,
// everything else as TOML. A missing file is not an error; the defaults
// are used.
//
// # Live Reload
//
// Watcher monitors the config file and delivers a freshly loaded Config
// after each change:
//
//	w, _ := config.NewWatcher(path, func(cfg *config.Config) { ... })
//	go w.Run(ctx)
package config
