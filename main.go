package main

import (
	auth "Plateworks/internal/auth"
	girder "Plateworks/internal/calc/girder"
	lapjoint "Plateworks/internal/calc/lapjoint"
	autodesign "Plateworks/internal/calc/premium/autodesign"
	batch "Plateworks/internal/calc/premium/batch"
	importer "Plateworks/internal/calc/premium/importer"
	recommend "Plateworks/internal/calc/premium/recommend"
	report "Plateworks/internal/calc/report"
	designs "Plateworks/internal/designs"
	repo "Plateworks/internal/repo"
	"context"
	"database/sql"
	"sync"
	"syscall"
	"time"

	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	designRepo := repo.NewPostgresDesignDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	girderH := &girder.Handler{}
	lapjointH := &lapjoint.Handler{}
	reportH := &report.Handler{}
	autoH := &autodesign.Handler{}
	batchH := &batch.Handler{}
	recommendH := &recommend.Handler{}
	importH := &importer.Handler{}
	designsH := &designs.Handler{Repo: designRepo}

	secureApi.HandleFunc("/tools/girder/check", girderH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/girder/optimize", autoH.Girder).Methods("POST")
	secureApi.HandleFunc("/tools/girder/batch", batchH.Girder).Methods("POST")
	secureApi.HandleFunc("/tools/girder/import", importH.Girder).Methods("POST")
	secureApi.HandleFunc("/tools/lapjoint/calc", lapjointH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/weld/recommend", recommendH.Weld).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/designs", designsH.Save).Methods("POST")
	secureApi.HandleFunc("/designs", designsH.List).Methods("GET")
	secureApi.HandleFunc("/designs/{id}", designsH.Get).Methods("GET")

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	slog.Info("starting server", "addr", ":443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown: %v", err)
	}
	slog.Info("server stopped")

	wg.Wait()
}
