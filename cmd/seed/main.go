package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/yaml.v3"

	"poetiq/internal/config"
	"poetiq/internal/model"
	"poetiq/internal/repository"
)

// seedFile is the on-disk shape of the questionnaire reference data.
type seedFile struct {
	Questions []struct {
		ID   int    `yaml:"id"`
		Text string `yaml:"text"`
		Type string `yaml:"type"`
	} `yaml:"questions"`
	Choices []struct {
		QuestionID int     `yaml:"questionId"`
		Value      string  `yaml:"value"`
		DragWeight float64 `yaml:"dragWeight"`
	} `yaml:"choices"`
	Phases []struct {
		ID                int     `yaml:"id"`
		Name              string  `yaml:"name"`
		JourneyLabel      string  `yaml:"journeyLabel"`
		NextStage         string  `yaml:"nextStage"`
		BaseCognitiveDrag float64 `yaml:"baseCognitiveDrag"`
	} `yaml:"phases"`
	ChecklistItems []struct {
		PhaseID int    `yaml:"phaseId"`
		Text    string `yaml:"text"`
		Type    string `yaml:"type"`
	} `yaml:"checklistItems"`
}

func main() {
	referencePath := flag.String("reference", "seed/questionnaire.yaml", "questionnaire reference data (YAML)")
	facilitiesPath := flag.String("facilities", "seed/facilities.csv", "facility dataset (CSV), empty to skip")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)

	ref, err := loadReference(*referencePath)
	if err != nil {
		log.Fatalf("Failed to load reference data: %v", err)
	}
	if err := repository.NewQuestionnaireRepo(db).SeedReference(ctx, ref); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}
	log.Printf("Seeded %d questions, %d choices, %d phases, %d checklist items",
		len(ref.Questions), len(ref.Choices), len(ref.Phases), len(ref.ChecklistItems))

	if *facilitiesPath == "" {
		return
	}
	facilities, err := loadFacilities(*facilitiesPath)
	if err != nil {
		log.Fatalf("Failed to load facilities: %v", err)
	}
	if err := repository.NewFacilityRepo(db).ReplaceAll(ctx, facilities); err != nil {
		log.Fatalf("Failed to seed facilities: %v", err)
	}
	log.Printf("Seeded %d facilities", len(facilities))
}

func loadReference(path string) (*model.ReferenceData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	ref := &model.ReferenceData{}
	for _, q := range file.Questions {
		ref.Questions = append(ref.Questions, model.Question{ID: q.ID, Text: q.Text, Type: q.Type})
	}
	for _, c := range file.Choices {
		ref.Choices = append(ref.Choices, model.Choice{QuestionID: c.QuestionID, Value: c.Value, DragWeight: c.DragWeight})
	}
	for _, p := range file.Phases {
		ref.Phases = append(ref.Phases, model.Phase{
			ID:                model.PhaseID(p.ID),
			Name:              p.Name,
			JourneyLabel:      p.JourneyLabel,
			NextStage:         p.NextStage,
			BaseCognitiveDrag: p.BaseCognitiveDrag,
		})
	}
	for _, item := range file.ChecklistItems {
		ref.ChecklistItems = append(ref.ChecklistItems, model.ChecklistItem{
			PhaseID: model.PhaseID(item.PhaseID),
			Text:    item.Text,
			Type:    item.Type,
		})
	}
	return ref, nil
}

// loadFacilities parses the facility dataset CSV. Expected columns:
// ccn,name,state,health_inspection_rating,staffing_hours_per_resident_day,
// staff_turnover_percent,fines_dollars. Empty metric cells become -1, the
// absent-data sentinel.
func loadFacilities(path string) ([]model.Facility, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	if _, err := reader.Read(); err != nil { // header
		return nil, err
	}

	var facilities []model.Facility
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 7 {
			return nil, fmt.Errorf("short record: %v", record)
		}
		facilities = append(facilities, model.Facility{
			CCN:                         record[0],
			Name:                        record[1],
			State:                       record[2],
			HealthInspectionRating:      parseMetric(record[3]),
			StaffingHoursPerResidentDay: parseMetric(record[4]),
			StaffTurnoverPercent:        parseMetric(record[5]),
			FinesDollars:                parseMetric(record[6]),
		})
	}
	return facilities, nil
}

func parseMetric(s string) float64 {
	if s == "" {
		return -1
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return -1
	}
	return v
}
