package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Evangelivm/confejas-2025-back/config"
	"github.com/Evangelivm/confejas-2025-back/controllers"
	"github.com/Evangelivm/confejas-2025-back/driver"
	"github.com/Evangelivm/confejas-2025-back/pubsub"
	"github.com/Evangelivm/confejas-2025-back/store"
	"github.com/Evangelivm/confejas-2025-back/summary"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No se encontró archivo .env, usando variables de entorno")
	}
	cfg := config.Load()

	db := driver.ConnectDB(cfg.DSN)
	defer db.Close()

	if err := driver.Migrate(db, "migrations"); err != nil {
		log.Fatal("Error al aplicar migraciones: ", err)
	}

	ps, err := pubsub.NewClient(cfg.RedisAddr)
	if err != nil {
		log.Fatal("No se pudo conectar a Redis: ", err)
	}
	defer ps.Close()

	s := store.New(db)
	publisher := summary.NewPublisher(s, ps, cfg.TrackedAges())

	partController := controllers.PartController{}
	statsController := controllers.StatsController{}
	estacaController := controllers.EstacaController{}
	saludController := controllers.SaludController{}

	router := mux.NewRouter()
	router.Use(controllers.RequestLogger)

	router.HandleFunc("/part", partController.GetParticipantes(s)).Methods("GET")
	router.HandleFunc("/part", partController.CreateParticipante(s, publisher)).Methods("POST")
	router.HandleFunc("/part/full/{id}", partController.GetFullParticipanteByID(s)).Methods("GET")
	router.HandleFunc("/part/{id}", partController.GetParticipanteByID(s)).Methods("GET")
	router.HandleFunc("/part/{id}", partController.UpdateAsistencia(s, publisher)).Methods("PUT")

	router.HandleFunc("/stats", statsController.GetStats(s)).Methods("GET")
	router.HandleFunc("/stats/{id}", statsController.GetStatsByComp(s)).Methods("GET")

	router.HandleFunc("/estaca", estacaController.GetEstacas(s)).Methods("GET")
	router.HandleFunc("/estaca/{id}", estacaController.GetBarriosByEstaca(s)).Methods("GET")

	router.HandleFunc("/salud", saludController.GetAtenciones(s)).Methods("GET")
	router.HandleFunc("/salud/inv", saludController.GetInventario(s)).Methods("GET")
	router.HandleFunc("/salud/inv", saludController.CreateInventarioItem(s)).Methods("POST")
	router.HandleFunc("/salud/inv/decrease-stock/{id}", saludController.DecreaseStock(s)).Methods("PATCH")
	router.HandleFunc("/salud/inv/{id}", saludController.UpdateInventarioItem(s)).Methods("PUT")
	router.HandleFunc("/salud/inv/{id}", saludController.DeleteInventarioItem(s)).Methods("DELETE")
	router.HandleFunc("/salud/atencion", saludController.CreateAtencion(s)).Methods("POST")
	router.HandleFunc("/salud/atencion/part/{id}", saludController.GetAtencionesByDatosID(s)).Methods("GET")
	router.HandleFunc("/salud/atencion/{id}", saludController.GetAtencionByID(s)).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.CORSOrigin}),
		handlers.AllowedMethods([]string{"GET", "PUT", "POST", "PATCH", "DELETE"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Accept"}),
		handlers.AllowCredentials(),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: cors(router),
	}

	go func() {
		log.Info("Servidor iniciado en el puerto ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error del servidor: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Apagando el servidor")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Error al apagar el servidor: ", err)
	}
}
