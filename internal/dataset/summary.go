package dataset

import (
	"fmt"
	"os"

	"cx-metrics-go/internal/logger"
	"cx-metrics-go/internal/types"
)

type DatasetSummary struct {
	TotalResponses    int            `json:"total_responses"`
	Questions         []string       `json:"questions"`
	AnswersByQuestion map[string]int `json:"answers_by_question"`
}

// LoadAndSummarize reads the export and reports its shape.
func LoadAndSummarize(path string) (DatasetSummary, error) {
	log := logger.New(os.Getenv("ENVIRONMENT"), os.Getenv("LOG_LEVEL")).WithField("component", "dataset.summary").WithField("path", path)
	log.Info("opening dataset for summarization")
	records, err := Load(path)
	if err != nil {
		log.WithError(err).Error("load failed")
		return DatasetSummary{}, fmt.Errorf("load: %w", err)
	}
	ds := Summarize(records)
	log.WithFields(map[string]interface{}{
		"total_responses": ds.TotalResponses,
		"questions":       len(ds.Questions),
	}).Info("dataset summarization complete")
	return ds, nil
}

// Summarize counts responses and answers per question. Questions keep first-seen order.
func Summarize(records []types.SurveyRecord) DatasetSummary {
	ds := DatasetSummary{
		TotalResponses:    len(records),
		Questions:         []string{},
		AnswersByQuestion: map[string]int{},
	}
	for _, rec := range records {
		for _, a := range rec.Answers {
			if _, seen := ds.AnswersByQuestion[a.QuestionID]; !seen {
				ds.Questions = append(ds.Questions, a.QuestionID)
			}
			ds.AnswersByQuestion[a.QuestionID]++
		}
	}
	return ds
}
