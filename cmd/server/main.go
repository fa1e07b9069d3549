package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"pocketcalc/internal/logger"
	"pocketcalc/internal/server"
)

func main() {
	hostPtr := flag.String("host", "http://localhost", "host of server")
	portPtr := flag.Int("port", 8080, "port of server")
	dbPtr := flag.String("db", "calc.db", "path to the sqlite database")
	keyPtr := flag.String("jwt-key", "", "JWT signing key (development default when empty)")
	flag.Parse()

	logger.Init()
	server.SetSigningKey([]byte(*keyPtr))

	db, err := sql.Open("sqlite3", *dbPtr)
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	defer db.Close()
	if err := db.PingContext(context.Background()); err != nil {
		log.WithError(err).Fatal("ping database")
	}
	if err := server.CreateTables(context.Background(), db); err != nil {
		log.WithError(err).Fatal("create tables")
	}

	go func() {
		log.WithFields(log.Fields{"host": *hostPtr, "port": *portPtr}).Info("run calculation server")
		s := server.GetServer(*hostPtr, *portPtr, db)
		if err := s.ListenAndServe(); err != nil {
			log.WithError(err).Fatal("serve")
		}
	}()

	var stopChan = make(chan os.Signal, 2)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-stopChan // wait for SIGINT
	log.Info("stop calculation server")
}
