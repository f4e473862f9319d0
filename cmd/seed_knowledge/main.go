package main

import (
	"encoding/json"
	"log"
	"os"

	"hr-assistant-be/internal/model"
	"hr-assistant-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

type seedEntry struct {
	title       string
	description string
	content     string
	category    string
	tags        []string
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding knowledge base...")

	entries := []seedEntry{
		{
			title:       "Avancement d'échelon",
			description: "Règles d'avancement automatique des fonctionnaires.",
			content:     "L'avancement d'échelon intervient tous les deux ans, sous réserve d'une notation au moins égale à la moyenne. Il est constaté par arrêté du ministre.",
			category:    "carrière",
			tags:        []string{"avancement", "échelon", "notation"},
		},
		{
			title:       "Titularisation",
			description: "Conditions de titularisation après le stage probatoire.",
			content:     "Le fonctionnaire stagiaire est titularisé après un an de stage, sur rapport favorable de son supérieur hiérarchique et avis de la commission administrative paritaire.",
			category:    "carrière",
			tags:        []string{"titularisation", "stage"},
		},
		{
			title:       "Congés annuels",
			description: "Droits à congé des agents publics.",
			content:     "Tout agent a droit à trente jours ouvrables de congé annuel payé. Les congés sont accordés par le chef de service en tenant compte des nécessités de service.",
			category:    "absences",
			tags:        []string{"congés"},
		},
		{
			title:       "Note de service",
			description: "Forme et circuit de validation des notes de service.",
			content:     "La note de service est signée du directeur concerné, numérotée dans la série annuelle de la direction et diffusée à l'ensemble des agents destinataires.",
			category:    "procédures",
			tags:        []string{"note de service", "rédaction"},
		},
		{
			title:       "Rédaction des arrêtés",
			description: "Visas obligatoires d'un arrêté ministériel.",
			content:     "Tout arrêté vise la Constitution, le statut général de la Fonction Publique et les textes particuliers applicables. Les articles sont numérotés et le dernier article fixe l'entrée en vigueur.",
			category:    "procédures",
			tags:        []string{"arrêté", "visas", "rédaction"},
		},
	}

	created := 0
	for _, e := range entries {
		var existing model.KnowledgeEntry
		if err := db.Where("title = ?", e.title).First(&existing).Error; err == nil {
			log.Printf("Entry '%s' already exists, skipping...", e.title)
			continue
		}

		tagsJson, err := json.Marshal(e.tags)
		if err != nil {
			color.Red("Error marshalling tags for '%s': %v", e.title, err)
			continue
		}

		record := model.KnowledgeEntry{
			Title:       e.title,
			Description: e.description,
			Content:     e.content,
			Category:    e.category,
			Tags:        datatypes.JSON(tagsJson),
			IsActive:    true,
		}
		if err := db.Create(&record).Error; err != nil {
			color.Red("Error creating entry '%s': %v", e.title, err)
			continue
		}
		created++
		log.Printf("Created entry: %s [%s]", e.title, e.category)
	}

	color.Green("✅ Knowledge seeding completed: %d entries created", created)
}
