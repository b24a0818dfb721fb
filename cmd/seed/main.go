// seed carga artículos iniciales en el almacén configurado (STORE_DRIVER).
//
// Uso: go run ./cmd/seed [ruta/articles.csv]
// Sin argumento se cargan los artículos de ejemplo. El CSV usa ';' como separador y la cabecera
// reference;nom;categorie;quantite;unite;seuilMin;emplacement;fournisseur;prixUnitaire.
// Los exportados desde Excel en ISO-8859-1 se convierten a UTF-8. Las referencias ya existentes se omiten.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Soubahou/gestion-stock-atlas/internal/application/dto"
	"github.com/Soubahou/gestion-stock-atlas/internal/application/usecase"
	"github.com/Soubahou/gestion-stock-atlas/internal/domain/inventory"
	"github.com/Soubahou/gestion-stock-atlas/internal/infrastructure/snapshot"
	"github.com/Soubahou/gestion-stock-atlas/pkg/config"
	"github.com/Soubahou/gestion-stock-atlas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Service: "seed"})

	rows := sampleArticles()
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if rows, err = readCSV(f); err != nil {
			fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
			os.Exit(1)
		}
	}

	ctx := context.Background()
	store, closeStore, err := snapshot.OpenStore(ctx, cfg, log.Zerolog())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacén: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	uc := usecase.NewArticleUseCase(snapshot.NewTxRunner(store, log.Zerolog()), nil, log.Zerolog(), nil, nil)
	existing, err := uc.List(ctx, dto.ArticleFilter{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer artículos: %v\n", err)
		os.Exit(1)
	}
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[inventory.Fold(a.Reference)] = true
	}

	created, skipped := 0, 0
	for _, in := range rows {
		key := inventory.Fold(in.Reference)
		if seen[key] {
			skipped++
			continue
		}
		if _, err := uc.Create(ctx, in); err != nil {
			log.Warn().Err(err).Str("reference", in.Reference).Msg("artículo omitido")
			skipped++
			continue
		}
		seen[key] = true
		created++
	}

	fmt.Printf("Seed %s: %d artículos creados, %d omitidos\n", cfg.Store.Driver, created, skipped)
}
