package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config agrupa la configuración que antes vivía en variables de entorno
// sueltas repartidas por todo el proceso.
type Config struct {
	DSN        string
	RedisAddr  string
	CORSOrigin string
	Port       string
	AgeMin     int
	AgeMax     int
}

func Load() Config {
	cfg := Config{
		DSN:        getEnv("DB_DSN", "root:root@tcp(127.0.0.1:3306)/confejas"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		Port:       getEnv("PORT", "3000"),
		AgeMin:     getEnvInt("AGE_MIN", 18),
		AgeMax:     getEnvInt("AGE_MAX", 35),
	}

	host := getEnv("REDIS_HOST", "localhost")
	port := getEnv("REDIS_PORT", "6379")
	cfg.RedisAddr = fmt.Sprintf("%s:%s", host, port)

	return cfg
}

// TrackedAges devuelve las edades incluidas en los resúmenes publicados.
func (c Config) TrackedAges() []int {
	if c.AgeMax < c.AgeMin {
		return nil
	}
	ages := make([]int, 0, c.AgeMax-c.AgeMin+1)
	for a := c.AgeMin; a <= c.AgeMax; a++ {
		ages = append(ages, a)
	}
	return ages
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
