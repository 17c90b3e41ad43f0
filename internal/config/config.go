package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host     string   `koanf:"host"`
	Port     int      `koanf:"port"`
	Frontend Frontend `koanf:"frontend"`
	Budget   Budget   `koanf:"budget"`
	Google   Google   `koanf:"google"`
	Database Database `koanf:"db"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

// Budget holds the target percentages of total income per expense category.
// The three values must add up to 100.
type Budget struct {
	NeedsPercent   int `koanf:"needspercent"`
	WantsPercent   int `koanf:"wantspercent"`
	SavingsPercent int `koanf:"savingspercent"`
}

type Google struct {
	ClientId     string `koanf:"clientid"`
	ClientSecret string `koanf:"clientsecret"`
}

type Database struct {
	// Driver selects the storage variant: "sqlite" (local file) or "postgres".
	Driver string `koanf:"driver"`
	Path   string `koanf:"path"` // sqlite only
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "http://localhost:3000",
		Port: 8181,
		Frontend: Frontend{
			Enabled: true,
		},
		Budget: Budget{
			NeedsPercent:   50,
			WantsPercent:   30,
			SavingsPercent: 20,
		},
		Database: Database{
			Driver: "sqlite",
			Path:   "centsible.db",
			Host:   "localhost",
			Port:   5432,
			User:   "centsible",
			Pass:   "",
			Name:   "centsible",
			Schema: "centsible",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "CENTSIBLE_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "CENTSIBLE_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}
	if err := app.Validate(); err != nil {
		return Application{}, err
	}

	return app, nil
}

func (a Application) Validate() error {
	b := a.Budget
	if b.NeedsPercent < 0 || b.WantsPercent < 0 || b.SavingsPercent < 0 {
		return fmt.Errorf("budget target percentages must not be negative")
	}
	if sum := b.NeedsPercent + b.WantsPercent + b.SavingsPercent; sum != 100 {
		return fmt.Errorf("budget target percentages must add up to 100, got %d", sum)
	}
	switch a.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database driver: %q", a.Database.Driver)
	}
	return nil
}
