package internal

import (
	"os"
	"strconv"
	"time"
)

const (
	RunAddress      = "RUN_ADDRESS"
	DatabaseURI     = "DATABASE_URI"
	SheetURL        = "GOOGLE_SHEET_URL"
	CredentialsFile = "GOOGLE_APPLICATION_CREDENTIALS"
	JWTSecret       = "JWT_SECRET"
	LogLevel        = "LOG_LEVEL"
	StrictBalance   = "STRICT_BALANCE"
	Timezone        = "TIMEZONE"
	ServerURL       = "LAUNDRYPOS_SERVER"
)

const (
	defaultRunAddress = "localhost:8080"
	defaultJWTSecret  = "secret"
	defaultLogLevel   = "info"
	defaultTimezone   = "Local"
	defaultServerURL  = "http://localhost:8080"
)

type Config struct {
	RunAddress      string
	DatabaseURI     string
	SheetURL        string
	CredentialsFile string
	JWTSecret       string
	LogLevel        string
	StrictBalance   bool
	Timezone        string
	ServerURL       string
}

// NewConfig reads the environment. Command line flags bound to the returned fields
// override it.
func NewConfig() *Config {
	strict, _ := strconv.ParseBool(setEnvOrDefault(StrictBalance, "false"))
	return &Config{
		RunAddress:      setEnvOrDefault(RunAddress, defaultRunAddress),
		DatabaseURI:     setEnvOrDefault(DatabaseURI, ""),
		SheetURL:        setEnvOrDefault(SheetURL, ""),
		CredentialsFile: setEnvOrDefault(CredentialsFile, ""),
		JWTSecret:       setEnvOrDefault(JWTSecret, defaultJWTSecret),
		LogLevel:        setEnvOrDefault(LogLevel, defaultLogLevel),
		StrictBalance:   strict,
		Timezone:        setEnvOrDefault(Timezone, defaultTimezone),
		ServerURL:       setEnvOrDefault(ServerURL, defaultServerURL),
	}
}

// Location is the shop's time zone; closing days are cut at its midnight.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
