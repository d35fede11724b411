// seed crea el usuario administrador inicial y, opcionalmente, importa el
// catálogo de productos desde un CSV exportado del POS anterior (Windows-1252,
// separado por punto y coma: nombre;descripcion;precio;stock;categoria).
//
// Uso: go run ./cmd/seed [ruta/catalogo.csv]
// Requiere JWT_SECRET y las variables de conexión a la base de datos.
// El password del admin sale de ADMIN_PASSWORD (default: cambiar después).
package main

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/pos-backoffice/internal/domain/entity"
	"github.com/jhoicas/pos-backoffice/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-backoffice/pkg/config"
	"github.com/jhoicas/pos-backoffice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	adminEmail := envOr("ADMIN_EMAIL", "admin@example.com")
	adminPassword := envOr("ADMIN_PASSWORD", "admin123")

	existing, err := userRepo.GetByEmail(adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuario admin")
	}
	if existing != nil {
		log.Info().Str("email", adminEmail).Msg("usuario admin ya existe, no se toca")
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		now := time.Now()
		admin := &entity.User{
			ID:           uuid.New().String(),
			Email:        adminEmail,
			PasswordHash: string(hash),
			Name:         "Administrador",
			Role:         entity.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear usuario admin")
		}
		log.Info().Str("email", adminEmail).Msg("usuario admin creado")
	}

	if len(os.Args) > 1 {
		count, err := importCatalog(os.Args[1], productRepo)
		if err != nil {
			log.Fatal().Err(err).Str("file", os.Args[1]).Msg("importar catálogo")
		}
		log.Info().Int("products", count).Msg("catálogo importado")
	}
}

// importCatalog lee el CSV del POS anterior. El export viene en Windows-1252,
// se transcodifica a UTF-8 antes de parsear. La primera fila es el encabezado.
func importCatalog(path string, repo interface {
	Create(product *entity.Product) error
}) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = -1

	count := 0
	for i := 0; ; i++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		if i == 0 || len(record) < 4 {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil || !price.GreaterThan(decimal.Zero) {
			continue
		}
		stock, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
		if err != nil || stock < 0 {
			continue
		}
		category := ""
		if len(record) > 4 {
			category = strings.TrimSpace(record[4])
		}
		now := time.Now()
		product := &entity.Product{
			ID:          uuid.New().String(),
			Name:        strings.TrimSpace(record[0]),
			Description: strings.TrimSpace(record[1]),
			Price:       price,
			Stock:       stock,
			Category:    category,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if product.Name == "" {
			continue
		}
		if err := repo.Create(product); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
