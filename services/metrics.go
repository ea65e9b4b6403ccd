package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	roomsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "timeline_rooms_created_total",
		Help: "Number of rooms created.",
	})
	roundsResolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "timeline_rounds_resolved_total",
		Help: "Number of rounds resolved by a reveal.",
	})
	gamesFinished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "timeline_games_finished_total",
		Help: "Number of games that reached a winner.",
	})
)
