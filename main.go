package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/QuickTask/QT-Backend/internal/auth"
	"github.com/QuickTask/QT-Backend/internal/config"
	"github.com/QuickTask/QT-Backend/internal/db"
	"github.com/QuickTask/QT-Backend/internal/middleware"
	"github.com/QuickTask/QT-Backend/internal/tasks"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")
	cfg := config.Load()

	db.Connect()
	auth.Init(cfg)
	tasks.Init()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Get("/", RootHandler)

	auth.RegisterRoutes(r)
	r.Mount("/tasks", tasks.SetupRoutes(cfg.SessionCookieName))

	fmt.Println("Server listening on port :" + cfg.Port + "...")

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
