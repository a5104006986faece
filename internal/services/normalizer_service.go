package services

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"roamconnect/internal/models/response_models"
	"roamconnect/pkg/utils"
)

// NormalizerServiceInterface turns a raw plan payload of any JSON shape into
// the canonical ItineraryDetail. It never fails: every field access is
// optional and every branch has a terminal default.
type NormalizerServiceInterface interface {
	Normalize(raw interface{}) *response_models.ItineraryDetail
}

// Candidate keys per field, tried in priority order. This is the one place
// the payload's shape tolerance is written down.
var (
	activityNameKeys   = []string{"activity", "name", "title"}
	activityTimeKeys   = []string{"time_slot", "time", "timing", "schedule"}
	descriptionKeys    = []string{"details", "description", "note"}
	noteSubtextKeys    = []string{"description", "details", "note"}
	costKeys           = []string{"cost", "price", "amount"}
	itemTitleKeys      = []string{"title", "name", "label"}
	restaurantNameKeys = []string{"name", "title", "label"}
	cuisineKeys        = []string{"cuisine", "type"}
	restaurantCostKeys = []string{"average_cost", "cost", "price"}
	transportTypeKeys  = []string{"type", "mode", "method"}
	transportFromKeys  = []string{"from", "origin", "start"}
	transportToKeys    = []string{"to", "destination", "end"}
	durationKeys       = []string{"duration", "time"}
	categoryNameKeys   = []string{"category", "name", "label"}
)

type NormalizerService struct{}

func NewNormalizerService() NormalizerServiceInterface {
	return &NormalizerService{}
}

func (n *NormalizerService) Normalize(raw interface{}) *response_models.ItineraryDetail {
	root, _ := asMap(raw)
	if root == nil {
		root = map[string]interface{}{}
	}
	nested, _ := asMap(root["itinerary"])

	// Basic fields: root wins, nested is the fallback.
	basic := func(key string) interface{} {
		if v, ok := root[key]; ok && v != nil {
			return v
		}
		if nested != nil {
			if v, ok := nested[key]; ok {
				return v
			}
		}
		return nil
	}
	// Detail fields: nested wins, root is the fallback (covers the merged
	// create-response envelope, which has no "itinerary" sub-object).
	detail := func(key string) interface{} {
		if nested != nil {
			if v, ok := nested[key]; ok && v != nil {
				return v
			}
		}
		if v, ok := root[key]; ok {
			return v
		}
		return nil
	}

	out := &response_models.ItineraryDetail{
		Source:                    stringOr(basic("source"), "N/A"),
		Destination:               stringOr(basic("destination"), "N/A"),
		Days:                      utils.CoerceInt(basic("days")),
		Budget:                    utils.CoerceAmount(basic("budget")),
		Preferences:               preferencesString(basic("preferences")),
		Summary:                   stringOr(detail("summary"), ""),
		DailyItinerary:            []response_models.DayPlan{},
		RestaurantRecommendations: []response_models.RestaurantRef{},
		TransportationDetails:     []response_models.TransportRef{},
		CulturalNotes:             []response_models.NoteItem{},
		LocalTips:                 []response_models.NoteItem{},
		EmergencyInfo:             map[string]string{},
	}

	out.BudgetBreakdown = normalizeBreakdown(detail("budget_breakdown"))
	out.DailyItinerary = normalizeDays(detail("daily_itinerary"))
	out.RestaurantRecommendations = normalizeRestaurants(detail("restaurant_recommendations"))
	out.TransportationDetails = normalizeTransports(detail("transportation_details"))
	out.CulturalNotes = normalizeNotes(detail("cultural_notes"))
	out.LocalTips = normalizeNotes(detail("local_tips"))
	out.EmergencyInfo = normalizeEmergencyInfo(detail("emergency_info"))

	return out
}

func normalizeBreakdown(v interface{}) *response_models.BudgetBreakdown {
	m, ok := asMap(v)
	if !ok {
		return nil
	}

	bb := &response_models.BudgetBreakdown{Categories: []response_models.BudgetCategory{}}

	switch cats := m["categories"].(type) {
	case []interface{}:
		for _, item := range cats {
			cm, ok := asMap(item)
			if !ok {
				continue
			}
			bb.Categories = append(bb.Categories, response_models.BudgetCategory{
				Name:       pickString(cm, categoryNameKeys...),
				Amount:     utils.CoerceAmount(cm["amount"]),
				Percentage: utils.CoerceAmount(cm["percentage"]),
			})
		}
		if t := m["total"]; isNumeric(t) {
			total := utils.CoerceAmount(t)
			bb.Total = &total
		}
	case map[string]interface{}:
		bb.Categories, bb.Total = categoriesFromMapping(cats)
	default:
		// No categories key at all: the breakdown itself may be the
		// flat category-name -> amount mapping.
		bb.Categories, bb.Total = categoriesFromMapping(m)
	}

	for i := range bb.Categories {
		if bb.Categories[i].Name == "" {
			bb.Categories[i].Name = "Other"
		}
	}

	if len(bb.Categories) == 0 {
		return nil
	}
	return bb
}

// categoriesFromMapping derives categories from a flat name -> amount map.
// Percentages are shares of the sum, rounded to the nearest integer. Keys
// are sorted so the output order is stable.
func categoriesFromMapping(m map[string]interface{}) ([]response_models.BudgetCategory, *float64) {
	names := make([]string, 0, len(m))
	total := 0.0
	for name, v := range m {
		if !isNumeric(v) {
			continue
		}
		names = append(names, name)
		total += utils.CoerceAmount(v)
	}
	sort.Strings(names)

	cats := make([]response_models.BudgetCategory, 0, len(names))
	for _, name := range names {
		amount := utils.CoerceAmount(m[name])
		pct := 0.0
		if total > 0 {
			pct = math.Round(amount / total * 100)
		}
		cats = append(cats, response_models.BudgetCategory{
			Name:       name,
			Amount:     amount,
			Percentage: pct,
		})
	}
	if len(cats) == 0 {
		return cats, nil
	}
	return cats, &total
}

func normalizeDays(v interface{}) []response_models.DayPlan {
	items, ok := asSlice(v)
	if !ok {
		return []response_models.DayPlan{}
	}

	days := make([]response_models.DayPlan, 0, len(items))
	for i, item := range items {
		dm, _ := asMap(item)
		day := response_models.DayPlan{
			Day:        i + 1,
			Activities: []response_models.Activity{},
		}
		if dm != nil {
			if d := utils.CoerceInt(dm["day"]); d > 0 {
				day.Day = d
			}
			if acts, ok := asSlice(dm["activities"]); ok {
				for _, a := range acts {
					day.Activities = append(day.Activities, normalizeActivity(a))
				}
			}
		}
		days = append(days, day)
	}
	return days
}

func normalizeActivity(v interface{}) response_models.Activity {
	am, _ := asMap(v)
	if am == nil {
		am = map[string]interface{}{}
	}

	name := pickString(am, activityNameKeys...)
	if name == "" {
		name = "Unnamed Activity"
	}
	time := pickString(am, activityTimeKeys...)
	if time == "" {
		time = "Time not specified"
	}

	return response_models.Activity{
		Name:    name,
		Time:    time,
		Details: pickString(am, descriptionKeys...),
		Cost:    pickAmount(am, costKeys...),
	}
}

func normalizeRestaurants(v interface{}) []response_models.RestaurantRef {
	items, ok := asSlice(v)
	if !ok {
		return []response_models.RestaurantRef{}
	}

	out := make([]response_models.RestaurantRef, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, response_models.RestaurantRef{Name: s})
			continue
		}
		rm, _ := asMap(item)
		if rm == nil {
			rm = map[string]interface{}{}
		}

		name := pickString(rm, restaurantNameKeys...)
		if name == "" {
			name = "Unknown Restaurant"
		}
		detail := pickString(rm, cuisineKeys...)
		if cost := pickAmount(rm, restaurantCostKeys...); cost > 0 {
			detail += fmt.Sprintf(" (₹%s)", utils.FormatINR(cost))
		}

		out = append(out, response_models.RestaurantRef{Name: name, Detail: detail})
	}
	return out
}

func normalizeTransports(v interface{}) []response_models.TransportRef {
	items, ok := asSlice(v)
	if !ok {
		return []response_models.TransportRef{}
	}

	out := make([]response_models.TransportRef, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, response_models.TransportRef{Raw: s})
			continue
		}
		tm, _ := asMap(item)
		if tm == nil {
			tm = map[string]interface{}{}
		}

		ref := response_models.TransportRef{
			Type:     pickString(tm, transportTypeKeys...),
			From:     pickString(tm, transportFromKeys...),
			To:       pickString(tm, transportToKeys...),
			Duration: pickString(tm, durationKeys...),
			Cost:     pickAmount(tm, costKeys...),
		}
		if ref.Type == "" {
			ref.Type = "Transport"
		}
		if ref.From == "" {
			ref.From = "Origin"
		}
		if ref.To == "" {
			ref.To = "Destination"
		}
		out = append(out, ref)
	}
	return out
}

func normalizeNotes(v interface{}) []response_models.NoteItem {
	items, ok := asSlice(v)
	if !ok {
		return []response_models.NoteItem{}
	}

	out := make([]response_models.NoteItem, 0, len(items))
	for i, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, response_models.NoteItem{Title: s})
			continue
		}
		nm, _ := asMap(item)
		if nm == nil {
			nm = map[string]interface{}{}
		}

		title := pickString(nm, itemTitleKeys...)
		if title == "" {
			title = fmt.Sprintf("Item %d", i+1)
		}

		out = append(out, response_models.NoteItem{
			Title:   title,
			Subtext: pickString(nm, noteSubtextKeys...),
		})
	}
	return out
}

func normalizeEmergencyInfo(v interface{}) map[string]string {
	m, ok := asMap(v)
	if !ok {
		return map[string]string{}
	}

	out := make(map[string]string, len(m))
	for key, val := range m {
		switch t := val.(type) {
		case string:
			out[key] = t
		case float64:
			out[key] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			out[key] = strconv.FormatBool(t)
		}
	}
	return out
}

func preferencesString(v interface{}) string {
	switch t := v.(type) {
	case string:
		if strings.TrimSpace(t) != "" {
			return t
		}
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, p := range t {
			if s, ok := p.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}
	return "None specified"
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}

func asSlice(v interface{}) ([]interface{}, bool) {
	s, ok := v.([]interface{})
	return s, ok
}

func stringOr(v interface{}, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

// pickString returns the first non-empty string among the candidate keys.
func pickString(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// pickAmount returns the first coercible numeric value among the candidate
// keys. Strings only count when they contain a digit.
func pickAmount(m map[string]interface{}, keys ...string) float64 {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		if isNumeric(v) {
			return utils.CoerceAmount(v)
		}
	}
	return 0
}

func isNumeric(v interface{}) bool {
	switch t := v.(type) {
	case float64, float32, int, int64:
		return true
	case string:
		return strings.ContainsAny(t, "0123456789")
	}
	return false
}
