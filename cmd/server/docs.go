package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           Options Desk API
// @version         0.1.0
// @description     Demo options dashboard backend: positions, bank balance, strike ladder.
// @host            localhost:8080
// @BasePath        /
// @schemes         http
