package timeline

import (
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/models"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/spatial"
)

// Each export shape gets its own extraction strategy. Strategies are pure:
// they read a generic key/value view of one record and yield zero or more
// candidates, skipping anything malformed instead of failing.

// extractAll runs every strategy in priority order over the document.
func extractAll(doc map[string]any) []models.CandidatePoint {
	var candidates []models.CandidatePoint
	candidates = append(candidates, extractRawSignals(doc)...)
	candidates = append(candidates, extractTimelineObjects(doc)...)
	candidates = append(candidates, extractFlatLocations(doc)...)
	return candidates
}

// latLonE7 reads a fixed-point coordinate pair from a point-like object,
// accepting both alias conventions (latE7/lngE7 and latitudeE7/longitudeE7).
func latLonE7(point map[string]any) (lat, lon float64, ok bool) {
	latRaw, latOK := firstNumber(point, "latE7", "latitudeE7")
	lonRaw, lonOK := firstNumber(point, "lngE7", "longitudeE7")
	if !latOK || !lonOK {
		return 0, 0, false
	}
	return spatial.DecodeE7(latRaw), spatial.DecodeE7(lonRaw), true
}

// extractRawSignals walks timelineEdits[].rawSignal.signal entries. The
// signal field may be a single object or an array; the position may be a
// sub-object or the signal itself.
func extractRawSignals(doc map[string]any) []models.CandidatePoint {
	edits, ok := asSlice(doc["timelineEdits"])
	if !ok {
		return nil
	}

	var out []models.CandidatePoint
	for _, e := range edits {
		edit, ok := asMap(e)
		if !ok {
			continue
		}
		rawSignal, ok := childMap(edit, "rawSignal")
		if !ok {
			continue
		}
		for _, signal := range objectsIn(rawSignal["signal"]) {
			if c, ok := signalPoint(signal); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// signalPoint extracts at most one candidate from a raw signal entry.
func signalPoint(signal map[string]any) (models.CandidatePoint, bool) {
	position, ok := childMap(signal, "position")
	if !ok {
		position = signal
	}
	point, ok := childMap(position, "point")
	if !ok {
		return models.CandidatePoint{}, false
	}
	lat, lon, ok := latLonE7(point)
	if !ok {
		return models.CandidatePoint{}, false
	}

	ts, ok := resolveTimestamp(signal)
	if !ok {
		ts, ok = resolveTimestamp(position)
	}
	if !ok {
		return models.CandidatePoint{}, false
	}

	accuracy := optionalNumber(position, "accuracy", "accuracyMeters")
	if accuracy == nil {
		accuracy = optionalNumber(signal, "accuracy", "accuracyMeters")
	}
	speed := optionalNumber(position, "speed")
	if speed == nil {
		speed = optionalNumber(signal, "speed")
	}

	return models.CandidatePoint{
		Timestamp: ts,
		Latitude:  lat,
		Longitude: lon,
		Accuracy:  accuracy,
		Speed:     speed,
	}, true
}

// extractTimelineObjects walks the semantic location history structures:
// activity segments (a trip with start and end locations) and place visits
// (a stay at a single location).
func extractTimelineObjects(doc map[string]any) []models.CandidatePoint {
	objects, ok := asSlice(doc["timelineObjects"])
	if !ok {
		return nil
	}

	var out []models.CandidatePoint
	for _, o := range objects {
		obj, ok := asMap(o)
		if !ok {
			continue
		}
		if segment, ok := childMap(obj, "activitySegment"); ok {
			out = append(out, activitySegmentPoints(segment)...)
		}
		if visit, ok := childMap(obj, "placeVisit"); ok {
			if c, ok := placeVisitPoint(visit); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

// activitySegmentPoints yields the start and end of a trip segment. The
// timestamps come from the segment-level duration; the speed slot carries
// the segment confidence when it is numeric.
func activitySegmentPoints(segment map[string]any) []models.CandidatePoint {
	duration, _ := childMap(segment, "duration")

	var out []models.CandidatePoint
	for _, end := range []struct {
		locationKey  string
		timestampKey string
	}{
		{"startLocation", "startTimestamp"},
		{"endLocation", "endTimestamp"},
	} {
		loc, ok := childMap(segment, end.locationKey)
		if !ok {
			continue
		}
		lat, lon, ok := latLonE7(loc)
		if !ok {
			continue
		}
		ts, ok := NormalizeTimestamp(duration[end.timestampKey])
		if !ok {
			continue
		}
		out = append(out, models.CandidatePoint{
			Timestamp: ts,
			Latitude:  lat,
			Longitude: lon,
			Accuracy:  optionalNumber(loc, "accuracyMeters"),
			Speed:     optionalNumber(segment, "confidence"),
		})
	}
	return out
}

// placeVisitPoint yields the start of a stay at a place.
func placeVisitPoint(visit map[string]any) (models.CandidatePoint, bool) {
	loc, ok := childMap(visit, "location")
	if !ok {
		return models.CandidatePoint{}, false
	}
	lat, lon, ok := latLonE7(loc)
	if !ok {
		return models.CandidatePoint{}, false
	}
	duration, ok := childMap(visit, "duration")
	if !ok {
		return models.CandidatePoint{}, false
	}
	ts, ok := NormalizeTimestamp(duration["startTimestamp"])
	if !ok {
		return models.CandidatePoint{}, false
	}
	return models.CandidatePoint{
		Timestamp: ts,
		Latitude:  lat,
		Longitude: lon,
		Accuracy:  optionalNumber(loc, "accuracyMeters"),
	}, true
}

// extractFlatLocations walks a top-level locations array of records that
// carry the timestamp and coordinates directly. Coordinates may be E7
// fixed-point or plain decimal degrees.
func extractFlatLocations(doc map[string]any) []models.CandidatePoint {
	records, ok := asSlice(doc["locations"])
	if !ok {
		return nil
	}

	var out []models.CandidatePoint
	for _, r := range records {
		record, ok := asMap(r)
		if !ok {
			continue
		}
		if c, ok := flatLocationPoint(record); ok {
			out = append(out, c)
		}
	}
	return out
}

// flatLocationPoint extracts at most one candidate from a flat location
// record.
func flatLocationPoint(record map[string]any) (models.CandidatePoint, bool) {
	lat, lon, ok := latLonE7(record)
	if !ok {
		latRaw, latOK := firstNumber(record, "latitude")
		lonRaw, lonOK := firstNumber(record, "longitude")
		if !latOK || !lonOK {
			return models.CandidatePoint{}, false
		}
		lat, lon = latRaw, lonRaw
	}

	ts, ok := resolveTimestamp(record)
	if !ok {
		return models.CandidatePoint{}, false
	}

	return models.CandidatePoint{
		Timestamp: ts,
		Latitude:  lat,
		Longitude: lon,
		Accuracy:  optionalNumber(record, "accuracy", "accuracyMeters"),
		Speed:     optionalNumber(record, "speed"),
	}, true
}
