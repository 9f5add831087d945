package services

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// DoKeepAlivePing hits our own health endpoint so free-tier hosts do not
// idle the instance out. No-op unless keepalive.url is configured.
func DoKeepAlivePing() {
	baseURL := viper.GetString("keepalive.url")
	if len(baseURL) == 0 {
		return
	}

	client := http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(fmt.Sprintf("%s/health", baseURL))
	if err != nil {
		log.Warn().Err(err).Msg("An error occurred when sending keep-alive ping...")
		return
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Msg("Keep-alive ping sent.")
}
