package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port              string
	InitialBills      int
	AutoReturnSeconds int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults match the simulated machine: 500 twenty-unit bills on hand
	// and a three second auto-return after a completed transaction.
	env := Config{
		Port:              "9446",
		InitialBills:      500,
		AutoReturnSeconds: 3,
	}

	envPort := os.Getenv("ATM_PORT")
	envInitialBills := os.Getenv("ATM_INITIAL_BILLS")
	envAutoReturnSeconds := os.Getenv("ATM_AUTO_RETURN_SECONDS")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envInitialBills) != 0 {
		bills, err := strconv.Atoi(envInitialBills)
		if err != nil {
			return nil, err
		}
		env.InitialBills = bills
	}

	if len(envAutoReturnSeconds) != 0 {
		seconds, err := strconv.Atoi(envAutoReturnSeconds)
		if err != nil {
			return nil, err
		}
		env.AutoReturnSeconds = seconds
	}

	return &env, nil
}

// AutoReturnDelay is how long a completed transaction screen is shown
// before the session returns to the main menu on its own.
func (c *Config) AutoReturnDelay() time.Duration {
	return time.Duration(c.AutoReturnSeconds) * time.Second
}
