package main

import (
	"flag"
	"log"
	"net/http"

	"clothsim/config"
	"clothsim/network"
	"clothsim/room"
)

func main() {
	log.SetPrefix("[clothserver] ")

	envFile := flag.String("env", ".env", "dotenv file to load")
	addr := flag.String("addr", "", "listen address (overrides CLOTH_ADDR)")
	flag.Parse()

	config.InitConfig(*envFile)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	m := room.NewManager(room.Options{
		Cloth:  cfg.Cloth,
		Width:  cfg.ViewWidth,
		Height: cfg.ViewHeight,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", network.Handler(m))
	mux.HandleFunc("/rooms", network.RoomsHandler(m))

	log.Printf("cloth %dx%d spacing %.1f, listening on %s (ws endpoint: /ws?room=CODE)",
		cfg.Cloth.Rows, cfg.Cloth.Cols, cfg.Cloth.Spacing, cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, mux))
}
