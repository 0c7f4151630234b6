package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"clothsim/cloth"
)

var ErrInvalidSetting = errors.New("invalid setting")

type Config struct {
	Addr       string
	Cloth      cloth.Params
	ViewWidth  float64
	ViewHeight float64
}

func Default() Config {
	return Config{
		Addr:       ":8080",
		Cloth:      cloth.DefaultParams(),
		ViewWidth:  cloth.ViewWidth,
		ViewHeight: cloth.ViewHeight,
	}
}

// InitConfig loads .env into the process environment. A missing file is not
// an error; the defaults and real environment still apply.
func InitConfig(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env loaded, using environment and defaults")
		return
	}

	log.Println("Successfully loaded environment variables")
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}

// Load reads CLOTH_* variables over the defaults and validates the result.
func Load() (Config, error) {
	cfg := Default()

	if v, err := GetEnvVariable("CLOTH_ADDR"); err == nil {
		cfg.Addr = v
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"CLOTH_ROWS", &cfg.Cloth.Rows},
		{"CLOTH_COLS", &cfg.Cloth.Cols},
	}
	for _, e := range ints {
		if err := envInt(e.key, e.dst); err != nil {
			return Config{}, err
		}
	}
	floats := []struct {
		key string
		dst *float64
	}{
		{"CLOTH_SPACING", &cfg.Cloth.Spacing},
		{"CLOTH_GRAVITY", &cfg.Cloth.Gravity},
		{"CLOTH_TIMESTEP", &cfg.Cloth.TimeStep},
		{"CLOTH_TOLERANCE", &cfg.Cloth.Tolerance},
		{"CLOTH_VIEW_WIDTH", &cfg.ViewWidth},
		{"CLOTH_VIEW_HEIGHT", &cfg.ViewHeight},
	}
	for _, e := range floats {
		if err := envFloat(e.key, e.dst); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidSetting)
	}
	if !finite(c.ViewWidth) || !finite(c.ViewHeight) || c.ViewWidth <= 0 || c.ViewHeight <= 0 {
		return fmt.Errorf("%w: viewport must be finite and positive, got %vx%v", ErrInvalidSetting, c.ViewWidth, c.ViewHeight)
	}
	if c.Cloth.Rows < 1 || c.Cloth.Cols < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidSetting, c.Cloth.Rows, c.Cloth.Cols)
	}
	if !finite(c.Cloth.Spacing) || c.Cloth.Spacing < 0 {
		return fmt.Errorf("%w: spacing must be finite and >= 0, got %v", ErrInvalidSetting, c.Cloth.Spacing)
	}
	if err := c.Cloth.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSetting, err)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func envInt(key string, dst *int) error {
	v, err := GetEnvVariable(key)
	if err != nil {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidSetting, key, v, err)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v, err := GetEnvVariable(key)
	if err != nil {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidSetting, key, v, err)
	}
	*dst = f
	return nil
}
