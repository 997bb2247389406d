// seed genera un script SQL para poblar subscription_requests a partir del
// export XML del sistema de suscriptores anterior (Suscriptores.xml,
// codificado en ISO-8859-1).
//
// Uso: go run ./cmd/seed [ruta/Suscriptores.xml]
// Por defecto busca Suscriptores.xml en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_requests.sql
package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type export struct {
	Suscriptores []suscriptor `xml:"suscriptor"`
}

type suscriptor struct {
	Nombre    string `xml:"nombre,attr"`
	Email     string `xml:"email,attr"`
	Telefono  string `xml:"telefono,attr"`
	Direccion string `xml:"direccion,attr"`
}

func main() {
	xmlPath := "Suscriptores.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var exp export
	dec := xml.NewDecoder(f)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&exp); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	// Deduplicar por email (el export trae registros repetidos) y
	// descartar filas sin nombre o sin email.
	byEmail := make(map[string]suscriptor)
	for _, s := range exp.Suscriptores {
		email := strings.TrimSpace(strings.ToLower(s.Email))
		nombre := strings.TrimSpace(s.Nombre)
		if email == "" || nombre == "" {
			continue
		}
		byEmail[email] = suscriptor{
			Nombre:    nombre,
			Email:     email,
			Telefono:  strings.TrimSpace(s.Telefono),
			Direccion: strings.TrimSpace(s.Direccion),
		}
	}

	// Orden estable por email
	var emails []string
	for e := range byEmail {
		emails = append(emails, e)
	}
	sort.Strings(emails)

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_requests.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Solicitudes de suscripción importadas del sistema anterior\n")
	out.WriteString("-- Generado desde Suscriptores.xml\n\n")

	for _, e := range emails {
		s := byEmail[e]
		fmt.Fprintf(out, "INSERT INTO subscription_requests (id, name, email, phone, address, status)\n")
		fmt.Fprintf(out, "VALUES (gen_random_uuid(), '%s', '%s', '%s', '%s', 'pending')\n",
			escapeSQL(s.Nombre), escapeSQL(s.Email), escapeSQL(s.Telefono), escapeSQL(s.Direccion))
		out.WriteString("ON CONFLICT DO NOTHING;\n")
	}

	fmt.Printf("Generado %s: %d solicitudes\n", outPath, len(emails))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
