package service

import (
	"MuscleTracker/internal/model"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMissingColumns — в заголовке CSV нет обязательных колонок.
// Проверка идёт до любых изменений каталога.
var ErrMissingColumns = errors.New("CSV missing required columns: name, category, unit, protein, carbs, fat")

// requiredColumns — обязательный набор колонок, имена чувствительны к регистру.
var requiredColumns = []string{"name", "category", "unit", "protein", "carbs", "fat"}

// parseCatalogCSV разбирает CSV каталога. Правила:
//   - строки с пустым (после обрезки пробелов) именем молча пропускаются;
//   - пустые/неразборчивые числовые ячейки → 0.0;
//   - пустая категория → "Other", пустая порция → "unit";
//   - колонка calories, если есть, игнорируется — калории всегда считаются заново.
func parseCatalogCSV(r io.Reader) ([]model.Food, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // неровные строки не считаем фатальными

	header, err := cr.Read()
	if err != nil {
		return nil, ErrMissingColumns
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, ErrMissingColumns
		}
	}

	var foods []model.Food
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}

		name := strings.TrimSpace(cell(rec, idx["name"]))
		if name == "" {
			continue
		}

		category := strings.TrimSpace(cell(rec, idx["category"]))
		if category == "" {
			category = "Other"
		}
		unit := strings.TrimSpace(cell(rec, idx["unit"]))
		if unit == "" {
			unit = "unit"
		}

		protein := floatOrZero(cell(rec, idx["protein"]))
		carbs := floatOrZero(cell(rec, idx["carbs"]))
		fat := floatOrZero(cell(rec, idx["fat"]))

		foods = append(foods, model.Food{
			Name:     name,
			Category: category,
			Unit:     unit,
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
			Calories: Calories(protein, carbs, fat),
		})
	}
	return foods, nil
}

// cell возвращает значение колонки или пустую строку, если строка короче заголовка.
func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func floatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
