package middleware

import (
	"webaudit-srv/pkg/discord"
	"webaudit-srv/pkg/log"
)

type Middleware struct {
	l       log.Logger
	discord discord.IDiscord
	cors    CORSConfig
}

func New(l log.Logger, discordClient discord.IDiscord, cors CORSConfig) Middleware {
	return Middleware{
		l:       l,
		discord: discordClient,
		cors:    cors,
	}
}
