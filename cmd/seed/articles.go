package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Soubahou/gestion-stock-atlas/internal/application/dto"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var csvColumns = []string{
	"reference", "nom", "categorie", "quantite", "unite",
	"seuilMin", "emplacement", "fournisseur", "prixUnitaire",
}

// readCSV lee artículos separados por ';'. Si el contenido no es UTF-8 válido se decodifica como ISO-8859-1.
func readCSV(r io.Reader) ([]dto.CreateArticleRequest, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(bufio.NewReader(src))
	cr.Comma = ';'
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	index := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range []string{"reference", "nom"} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("columna obligatoria ausente: %s", col)
		}
	}

	out := make([]dto.CreateArticleRequest, 0, len(records)-1)
	for line, rec := range records[1:] {
		get := func(col string) string {
			if i, ok := index[col]; ok && i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}
		in := dto.CreateArticleRequest{
			Reference: get("reference"),
			Name:      get("nom"),
			Category:  get("categorie"),
			Unit:      get("unite"),
			Location:  get("emplacement"),
			Supplier:  get("fournisseur"),
		}
		if in.Quantity, err = optInt(get("quantite")); err != nil {
			return nil, fmt.Errorf("línea %d quantite: %w", line+2, err)
		}
		if in.MinThreshold, err = optInt(get("seuilMin")); err != nil {
			return nil, fmt.Errorf("línea %d seuilMin: %w", line+2, err)
		}
		if p := get("prixUnitaire"); p != "" {
			price, err := decimal.NewFromString(strings.ReplaceAll(p, ",", "."))
			if err != nil {
				return nil, fmt.Errorf("línea %d prixUnitaire: %w", line+2, err)
			}
			in.UnitPrice = &price
		}
		out = append(out, in)
	}
	return out, nil
}

func optInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func sampleArticles() []dto.CreateArticleRequest {
	type sample struct {
		ref, name, cat, unit, loc, supplier, price string
		qty, min                                   int
	}
	samples := []sample{
		{"QUI-001", "Vis à bois 4x40", "Quincaillerie", "boîte", "A-01", "Atlas Fixations", "3.50", 120, 20},
		{"QUI-002", "Chevilles nylon 8mm", "Quincaillerie", "boîte", "A-02", "Atlas Fixations", "2.10", 8, 15},
		{"MET-001", "Tube carré acier 40x40", "Métallerie", "barre", "B-01", "Maghreb Steel", "85.00", 35, 10},
		{"MET-002", "Tôle galvanisée 1mm", "Métallerie", "feuille", "B-02", "Maghreb Steel", "120.00", 4, 6},
		{"ELE-001", "Câble H07V-U 2.5mm²", "Électricité", "rouleau", "C-01", "ElecPro", "240.00", 12, 5},
		{"ELE-002", "Disjoncteur 16A", "Électricité", "pièce", "C-02", "ElecPro", "45.00", 0, 10},
		{"OUT-001", "Meuleuse 125mm", "Outillage", "pièce", "D-01", "Outils Pro", "650.00", 6, 2},
		{"PEI-001", "Peinture antirouille 1L", "Peinture", "pot", "E-01", "ColorSud", "75.00", 18, 8},
		{"SOU-001", "Électrodes rutiles 2.5mm", "Soudure", "paquet", "F-01", "Soudex", "95.00", 9, 10},
	}
	out := make([]dto.CreateArticleRequest, 0, len(samples))
	for _, s := range samples {
		qty, threshold := s.qty, s.min
		price := decimal.RequireFromString(s.price)
		out = append(out, dto.CreateArticleRequest{
			Reference:    s.ref,
			Name:         s.name,
			Category:     s.cat,
			Quantity:     &qty,
			Unit:         s.unit,
			MinThreshold: &threshold,
			Location:     s.loc,
			Supplier:     s.supplier,
			UnitPrice:    &price,
		})
	}
	return out
}
