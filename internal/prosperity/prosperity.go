// Package prosperity assesses the auspiciousness of an event from its
// date, hour and kind. It combines the day element of the event year
// with the element of the hour animal on the generative and
// destructive cycles.
package prosperity

import (
	"fmt"
	"time"

	"jungtsi/internal/cycle"
	"jungtsi/internal/mewa"
)

// EventType classifies the event being assessed.
type EventType string

const (
	Massacre    EventType = "massacre"
	Pregnancy   EventType = "pregnancy"
	Adulthood   EventType = "adulthood"
	Birthday    EventType = "birthday"
	Baptism     EventType = "baptism"
	NewClothes  EventType = "new_clothes"
	Undertaking EventType = "undertaking"
	Prosperity  EventType = "prosperity"
	Decline     EventType = "decline"
	Sickness    EventType = "sickness"
	Death       EventType = "death"
	Funeral     EventType = "funeral"
)

// EventTypes lists every accepted event type, in catalog order.
var EventTypes = []EventType{
	Massacre, Pregnancy, Adulthood, Birthday, Baptism, NewClothes,
	Undertaking, Prosperity, Decline, Sickness, Death, Funeral,
}

var validEventTypes = func() map[EventType]bool {
	m := make(map[EventType]bool, len(EventTypes))
	for _, e := range EventTypes {
		m[e] = true
	}
	return m
}()

// positiveEvents and negativeEvents split the catalog; everything else
// is neutral.
var positiveEvents = map[EventType]bool{
	Pregnancy: true, Adulthood: true, Birthday: true,
	Baptism: true, NewClothes: true, Prosperity: true,
}

var negativeEvents = map[EventType]bool{
	Massacre: true, Decline: true, Sickness: true, Death: true,
}

// ParseEventType validates an event type token.
func ParseEventType(s string) (EventType, error) {
	e := EventType(s)
	if !validEventTypes[e] {
		return "", fmt.Errorf("invalid event type %q", s)
	}
	return e, nil
}

// hourAnimals maps each hour 0..23 to its branch animal. Each animal
// governs a two-hour period; the Rat period wraps 23:00-01:00.
var hourAnimals = [24]cycle.Animal{
	0: cycle.Rat, 1: cycle.Rat,
	2: cycle.Ox, 3: cycle.Ox,
	4: cycle.Tiger, 5: cycle.Tiger,
	6: cycle.Rabbit, 7: cycle.Rabbit,
	8: cycle.Dragon, 9: cycle.Dragon,
	10: cycle.Snake, 11: cycle.Snake,
	12: cycle.Horse, 13: cycle.Horse,
	14: cycle.Sheep, 15: cycle.Sheep,
	16: cycle.Monkey, 17: cycle.Monkey,
	18: cycle.Rooster, 19: cycle.Rooster,
	20: cycle.Dog, 21: cycle.Dog,
	22: cycle.Pig, 23: cycle.Rat,
}

// animalElements maps each branch animal to its fixed element.
var animalElements = map[cycle.Animal]cycle.Element{
	cycle.Rat:     cycle.Water,
	cycle.Ox:      cycle.Earth,
	cycle.Tiger:   cycle.Wood,
	cycle.Rabbit:  cycle.Wood,
	cycle.Dragon:  cycle.Earth,
	cycle.Snake:   cycle.Fire,
	cycle.Horse:   cycle.Fire,
	cycle.Sheep:   cycle.Earth,
	cycle.Monkey:  cycle.Metal,
	cycle.Rooster: cycle.Metal,
	cycle.Dog:     cycle.Earth,
	cycle.Pig:     cycle.Water,
}

// HourAnimal returns the branch animal governing an hour in 0..23.
func HourAnimal(hour int) (cycle.Animal, error) {
	if hour < 0 || hour > 23 {
		return "", fmt.Errorf("hour %d outside 0..23", hour)
	}
	return hourAnimals[hour], nil
}

// Verdict grades an assessment.
type Verdict string

const (
	HighlyAuspicious     Verdict = "highly_auspicious"
	ModeratelyAuspicious Verdict = "moderately_auspicious"
	Neutral              Verdict = "neutral"
	Inauspicious         Verdict = "inauspicious"
)

// Assessment is the result of one prosperity evaluation.
type Assessment struct {
	EventType    EventType     `json:"event_type"`
	EventDate    string        `json:"event_date"`
	EventHour    int           `json:"event_hour"`
	Verdict      Verdict       `json:"verdict"`
	Reasoning    []string      `json:"reasoning"`
	EventProfile cycle.Profile `json:"event_profile"`
	EventMewas   mewa.Profile  `json:"event_mewas"`
	HourAnimal   cycle.Animal  `json:"hour_animal"`
	HourElement  cycle.Element `json:"hour_element"`
	DayElement   cycle.Element `json:"day_element"`
}

// Assess evaluates the auspiciousness of an event. The event year must
// be inside the supported window enforced by the caller; the function
// itself only rejects malformed hours and unknown event types.
func Assess(eventType EventType, eventDate time.Time, eventHour int) (*Assessment, error) {
	if !validEventTypes[eventType] {
		return nil, fmt.Errorf("invalid event type %q", eventType)
	}
	hourAnimal, err := HourAnimal(eventHour)
	if err != nil {
		return nil, err
	}

	profile := cycle.Resolve(eventDate.Year())
	mewas := mewa.FromPosition(profile.Position)
	hourElement := animalElements[hourAnimal]
	dayElement := profile.Element

	var reasoning []string
	var elementGrade Verdict
	switch {
	case cycle.Generates(dayElement, hourElement):
		elementGrade = HighlyAuspicious
		reasoning = append(reasoning, fmt.Sprintf("day element %s generates hour element %s (auspicious)", dayElement, hourElement))
	case cycle.Destroys(dayElement, hourElement):
		elementGrade = Inauspicious
		reasoning = append(reasoning, fmt.Sprintf("day element %s destroys hour element %s (inauspicious)", dayElement, hourElement))
	case cycle.Generates(hourElement, dayElement):
		elementGrade = ModeratelyAuspicious
		reasoning = append(reasoning, fmt.Sprintf("hour element %s generates day element %s (moderately auspicious)", hourElement, dayElement))
	default:
		elementGrade = Neutral
		reasoning = append(reasoning, fmt.Sprintf("neutral relationship between day element %s and hour element %s", dayElement, hourElement))
	}

	base := Neutral
	switch {
	case positiveEvents[eventType]:
		base = HighlyAuspicious
		reasoning = append(reasoning, fmt.Sprintf("event type %s is favorable", eventType))
	case negativeEvents[eventType]:
		base = Inauspicious
		reasoning = append(reasoning, fmt.Sprintf("event type %s is unfavorable", eventType))
	default:
		reasoning = append(reasoning, fmt.Sprintf("event type %s is neutral", eventType))
	}

	return &Assessment{
		EventType:    eventType,
		EventDate:    eventDate.Format("2006-01-02"),
		EventHour:    eventHour,
		Verdict:      combine(elementGrade, base),
		Reasoning:    reasoning,
		EventProfile: profile,
		EventMewas:   mewas,
		HourAnimal:   hourAnimal,
		HourElement:  hourElement,
		DayElement:   dayElement,
	}, nil
}

// combine folds the element relation grade and the event-type grade
// into the final verdict. An inauspicious factor on either side
// dominates; full auspiciousness needs both sides favorable.
func combine(element, base Verdict) Verdict {
	switch {
	case element == Inauspicious || base == Inauspicious:
		return Inauspicious
	case element == HighlyAuspicious && base == HighlyAuspicious:
		return HighlyAuspicious
	case element == ModeratelyAuspicious || element == HighlyAuspicious:
		return ModeratelyAuspicious
	default:
		return Neutral
	}
}
