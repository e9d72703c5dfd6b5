// Package analytics derives weight-loss insights from measurement history.
// Записи приходят отсортированными по убыванию даты, внутри пакет
// работает с хронологическим порядком.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/bodylog/bodylog/internal/models"
)

// Status классифицирует вывод анализа
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

const (
	// plateauWindow максимальное число последних записей для детекции плато
	plateauWindow = 5
	// plateauMinSpanDays минимальный охват окна в днях
	plateauMinSpanDays = 14
	// plateauThreshold кг, разброс ниже которого считается плато
	plateauThreshold = 0.3
	// maxForecastDays горизонт прогноза даты цели
	maxForecastDays = 365 * 3
)

type point struct {
	date time.Time
	day  float64
	val  float64
}

// WeeklyAverage returns the mean change of a field per week.
// Второе значение false когда данных меньше двух точек.
func WeeklyAverage(entries []models.Entry, key string) (float64, bool) {
	pts := toChronological(entries, key)
	if len(pts) < 2 {
		return 0, false
	}

	first := pts[0]
	last := pts[len(pts)-1]
	weeks := (last.day - first.day) / 7
	if weeks <= 0 {
		return 0, false
	}

	return round2((last.val - first.val) / weeks), true
}

// TrendSlope returns the linear regression slope in units per day
func TrendSlope(entries []models.Entry, key string) (float64, bool) {
	pts := toChronological(entries, key)
	if len(pts) < 2 {
		return 0, false
	}

	n := float64(len(pts))
	var sumX, sumY, sumXY, sumX2 float64
	for _, p := range pts {
		sumX += p.day
		sumY += p.val
		sumXY += p.day * p.val
		sumX2 += p.day * p.day
	}

	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, true
	}

	return (n*sumXY - sumX*sumY) / denom, true
}

// GoalEstimate прогноз достижения целевого веса
type GoalEstimate struct {
	Date  time.Time
	Weeks float64
}

// EstimateGoalDate projects when the goal weight will be reached.
// Прогноз есть только при отрицательном тренде и горизонте до трех лет.
func EstimateGoalDate(entries []models.Entry, goalWeight float64) *GoalEstimate {
	pts := toChronological(entries, models.FieldWeight)
	if len(pts) < 2 {
		return nil
	}

	slopePerDay, ok := TrendSlope(entries, models.FieldWeight)
	if !ok || slopePerDay >= 0 {
		return nil
	}

	currentWeight := pts[len(pts)-1].val
	if currentWeight <= goalWeight {
		return &GoalEstimate{Date: time.Now(), Weeks: 0}
	}

	remaining := goalWeight - currentWeight
	daysNeeded := remaining / slopePerDay
	if daysNeeded <= 0 || daysNeeded > maxForecastDays {
		return nil
	}

	lastDate := pts[len(pts)-1].date
	return &GoalEstimate{
		Date:  lastDate.Add(time.Duration(daysNeeded * float64(24*time.Hour))),
		Weeks: round1(daysNeeded / 7),
	}
}

// DetectPlateau reports whether recent weight entries show no real change.
// Плато — разброс меньше 0.3 кг по последним записям, покрывающим
// не меньше двух недель.
func DetectPlateau(entries []models.Entry) bool {
	pts := toChronological(entries, models.FieldWeight)
	if len(pts) < 3 {
		return false
	}

	window := plateauWindow
	if len(pts) < window {
		window = len(pts)
	}
	recent := pts[len(pts)-window:]

	span := recent[len(recent)-1].day - recent[0].day
	if span < plateauMinSpanDays {
		return false
	}

	minVal := recent[0].val
	maxVal := recent[0].val
	for _, p := range recent[1:] {
		minVal = math.Min(minVal, p.val)
		maxVal = math.Max(maxVal, p.val)
	}

	return maxVal-minVal < plateauThreshold
}

// RateAssessment оценка темпа изменения веса
type RateAssessment struct {
	Status Status
	Label  string
}

// AssessRate classifies a weekly weight change rate in kg/week
func AssessRate(weeklyRate float64) RateAssessment {
	abs := math.Abs(weeklyRate)

	switch {
	case weeklyRate >= 0:
		return RateAssessment{Status: StatusDanger, Label: "No progress"}
	case abs > 1.0:
		return RateAssessment{Status: StatusWarning, Label: "Losing too fast (muscle loss risk)"}
	case abs >= 0.2:
		return RateAssessment{Status: StatusOK, Label: "Optimal rate"}
	default:
		return RateAssessment{Status: StatusWarning, Label: "Very slow rate"}
	}
}

// WaistAnalysis динамика обхвата талии как индикатор потери жира
type WaistAnalysis struct {
	Status       Status
	Text         string
	WeeklyChange float64
	TotalChange  float64
}

// AnalyzeWaist summarizes circumference change for a girth field
func AnalyzeWaist(entries []models.Entry, key string) *WaistAnalysis {
	pts := toChronological(entries, key)
	if len(pts) < 2 {
		return nil
	}

	first := pts[0]
	last := pts[len(pts)-1]
	weeks := (last.day - first.day) / 7
	if weeks <= 0 {
		return nil
	}

	totalChange := round1(last.val - first.val)
	weeklyChange := round2(totalChange / weeks)

	result := &WaistAnalysis{
		WeeklyChange: weeklyChange,
		TotalChange:  totalChange,
	}

	switch {
	case totalChange < -2:
		result.Status = StatusOK
		result.Text = "Clear fat loss"
	case totalChange < 0:
		result.Status = StatusOK
		result.Text = "Gradual fat loss"
	case totalChange == 0:
		result.Status = StatusWarning
		result.Text = "No circumference change"
	default:
		result.Status = StatusDanger
		result.Text = "Circumference is growing, check the diet"
	}

	return result
}

// toChronological фильтрует записи с нужным полем и переводит их
// в хронологический ряд точек с днями от первой записи
func toChronological(entries []models.Entry, key string) []point {
	pts := make([]point, 0, len(entries))
	for _, e := range entries {
		val, ok := e.Fields[key]
		if !ok {
			continue
		}
		date, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		pts = append(pts, point{date: date, val: val})
	}

	if len(pts) == 0 {
		return nil
	}

	sort.Slice(pts, func(i, j int) bool {
		return pts[i].date.Before(pts[j].date)
	})

	base := pts[0].date
	for i := range pts {
		pts[i].day = pts[i].date.Sub(base).Hours() / 24
	}

	return pts
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
