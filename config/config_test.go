package config

import "testing"

func TestTrackedAges(t *testing.T) {
	cfg := Config{AgeMin: 18, AgeMax: 35}
	ages := cfg.TrackedAges()
	if len(ages) != 18 {
		t.Fatalf("edades = %d, se esperaban 18", len(ages))
	}
	if ages[0] != 18 || ages[len(ages)-1] != 35 {
		t.Errorf("rango = %d..%d", ages[0], ages[len(ages)-1])
	}
}

func TestTrackedAgesRangoInvertido(t *testing.T) {
	cfg := Config{AgeMin: 30, AgeMax: 20}
	if ages := cfg.TrackedAges(); ages != nil {
		t.Errorf("se esperaba nil, se obtuvo %v", ages)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DB_DSN", "REDIS_HOST", "REDIS_PORT", "CORS_ORIGIN", "PORT", "AGE_MIN", "AGE_MAX"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "3000" {
		t.Errorf("puerto = %q", cfg.Port)
	}
	if cfg.AgeMin != 18 || cfg.AgeMax != 35 {
		t.Errorf("rango de edades = %d..%d", cfg.AgeMin, cfg.AgeMax)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("redis = %q", cfg.RedisAddr)
	}
}
