package services

import (
	"fmt"
	"sort"

	"roamconnect/internal/models/response_models"
	"roamconnect/pkg/utils"
)

// DaySelection tracks which day of the plan is expanded. Expansion is
// exclusive: selecting the expanded day collapses it, selecting another day
// moves the expansion there.
type DaySelection struct {
	day      int
	expanded bool
}

// NewDaySelection starts with day 1 expanded.
func NewDaySelection() DaySelection {
	return DaySelection{day: 1, expanded: true}
}

func DaySelectionAt(day int) DaySelection {
	if day < 1 {
		return DaySelection{}
	}
	return DaySelection{day: day, expanded: true}
}

func (s *DaySelection) Toggle(day int) {
	if s.expanded && s.day == day {
		s.expanded = false
		s.day = 0
		return
	}
	s.day = day
	s.expanded = true
}

func (s DaySelection) Expanded() (int, bool) {
	return s.day, s.expanded
}

// ItineraryViewServiceInterface builds the ordered section tree from a
// canonical itinerary. A section appears iff its backing data is non-empty.
type ItineraryViewServiceInterface interface {
	BuildView(detail *response_models.ItineraryDetail, sel DaySelection) *response_models.ItineraryView
}

type ItineraryViewService struct{}

func NewItineraryViewService() ItineraryViewServiceInterface {
	return &ItineraryViewService{}
}

func (s *ItineraryViewService) BuildView(detail *response_models.ItineraryDetail, sel DaySelection) *response_models.ItineraryView {
	view := &response_models.ItineraryView{Sections: []response_models.ItinerarySection{}}

	view.Sections = append(view.Sections, response_models.ItinerarySection{
		Kind:  response_models.SectionHeader,
		Title: fmt.Sprintf("%s to %s", detail.Source, detail.Destination),
	})

	view.Sections = append(view.Sections, response_models.ItinerarySection{
		Kind: response_models.SectionBasicInfo,
		Fields: []response_models.LabeledValue{
			{Label: "Duration", Value: fmt.Sprintf("%d days", detail.Days)},
			{Label: "Budget", Value: "₹" + utils.FormatINR(detail.Budget)},
			{Label: "Preferences", Value: detail.Preferences},
		},
	})

	if detail.Summary != "" {
		view.Sections = append(view.Sections, response_models.ItinerarySection{
			Kind:  response_models.SectionSummary,
			Title: "Trip Summary",
			Text:  detail.Summary,
		})
	}

	if bb := detail.BudgetBreakdown; bb != nil && len(bb.Categories) > 0 {
		view.Sections = append(view.Sections, response_models.ItinerarySection{
			Kind:   response_models.SectionBudgetBreakdown,
			Title:  "Budget Breakdown",
			Budget: buildBudgetView(bb),
		})
	}

	if len(detail.DailyItinerary) > 0 {
		view.Sections = append(view.Sections, response_models.ItinerarySection{
			Kind:  response_models.SectionDailyItinerary,
			Title: "Daily Itinerary",
			Days:  buildDayViews(detail.DailyItinerary, sel),
		})
	}

	if len(detail.RestaurantRecommendations) > 0 {
		entries := make([]response_models.EntryView, 0, len(detail.RestaurantRecommendations))
		for _, r := range detail.RestaurantRecommendations {
			entries = append(entries, response_models.EntryView{Title: r.Name, Subtext: r.Detail})
		}
		view.Sections = append(view.Sections, response_models.ItinerarySection{
			Kind:    response_models.SectionRestaurants,
			Title:   "Restaurant Recommendations",
			Entries: entries,
		})
	}

	if len(detail.TransportationDetails) > 0 {
		lines := make([]string, 0, len(detail.TransportationDetails))
		for _, t := range detail.TransportationDetails {
			lines = append(lines, TransportLine(t))
		}
		view.Sections = append(view.Sections, response_models.ItinerarySection{
			Kind:  response_models.SectionTransportation,
			Title: "Transportation Options",
			Lines: lines,
		})
	}

	if len(detail.CulturalNotes) > 0 {
		view.Sections = append(view.Sections, response_models.ItinerarySection{
			Kind:    response_models.SectionCulturalNotes,
			Title:   "Cultural Notes",
			Entries: noteEntries(detail.CulturalNotes),
		})
	}

	if len(detail.LocalTips) > 0 {
		view.Sections = append(view.Sections, response_models.ItinerarySection{
			Kind:    response_models.SectionLocalTips,
			Title:   "Local Tips",
			Entries: noteEntries(detail.LocalTips),
		})
	}

	if len(detail.EmergencyInfo) > 0 {
		view.Sections = append(view.Sections, response_models.ItinerarySection{
			Kind:   response_models.SectionEmergencyInfo,
			Title:  "Emergency Information",
			Fields: emergencyFields(detail.EmergencyInfo),
		})
	}

	return view
}

// TransportLine renders one transportation entry. Plain-string entries pass
// through verbatim; structured ones compose
// "{type} from {from} to {to} ({duration}) - ₹{cost}" with duration and
// cost omitted when absent.
func TransportLine(t response_models.TransportRef) string {
	if t.Raw != "" {
		return t.Raw
	}

	line := fmt.Sprintf("%s from %s to %s", t.Type, t.From, t.To)
	if t.Duration != "" {
		line += fmt.Sprintf(" (%s)", t.Duration)
	}
	if t.Cost > 0 {
		line += fmt.Sprintf(" - ₹%s", utils.FormatINR(t.Cost))
	}
	return line
}

func buildBudgetView(bb *response_models.BudgetBreakdown) *response_models.BudgetBreakdownView {
	out := &response_models.BudgetBreakdownView{
		Rows: make([]response_models.BudgetRowView, 0, len(bb.Categories)),
	}
	for _, c := range bb.Categories {
		out.Rows = append(out.Rows, response_models.BudgetRowView{
			Name:       c.Name,
			Amount:     "₹" + utils.FormatINR(c.Amount),
			Percentage: c.Percentage,
		})
	}
	if bb.Total != nil {
		out.Total = "₹" + utils.FormatINR(*bb.Total)
	}
	return out
}

func buildDayViews(days []response_models.DayPlan, sel DaySelection) []response_models.DayView {
	expandedDay, expanded := sel.Expanded()

	out := make([]response_models.DayView, 0, len(days))
	for _, d := range days {
		dv := response_models.DayView{
			Day:      d.Day,
			Expanded: expanded && d.Day == expandedDay,
		}
		if dv.Expanded {
			dv.Activities = make([]response_models.ActivityView, 0, len(d.Activities))
			for _, a := range d.Activities {
				av := response_models.ActivityView{
					Name:    a.Name,
					Time:    a.Time,
					Details: a.Details,
				}
				if a.Cost > 0 {
					av.Cost = "₹" + utils.FormatINR(a.Cost)
				}
				dv.Activities = append(dv.Activities, av)
			}
		}
		out = append(out, dv)
	}
	return out
}

func noteEntries(notes []response_models.NoteItem) []response_models.EntryView {
	out := make([]response_models.EntryView, 0, len(notes))
	for _, n := range notes {
		out = append(out, response_models.EntryView{Title: n.Title, Subtext: n.Subtext})
	}
	return out
}

func emergencyFields(info map[string]string) []response_models.LabeledValue {
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]response_models.LabeledValue, 0, len(keys))
	for _, k := range keys {
		out = append(out, response_models.LabeledValue{Label: k, Value: info[k]})
	}
	return out
}
