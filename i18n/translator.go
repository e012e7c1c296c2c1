package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "token" for the offending ordinate text).
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "de":
		switch code {
		case "malformed_markup":
			return "die Eingabe ist kein wohlgeformtes GML"
		case "invalid_ordinate":
			return "Ordinate ist keine Zahl"
		case "incomplete_tuple":
			return "Koordinatenanzahl ist kein Vielfaches von 3"
		case "truncated":
			return "zu viele surfaceMember-Elemente"
		case "too_few_points":
			return "Ring hat zu wenige Punkte"
		case "ring_not_closed":
			return "Ring ist nicht geschlossen"
		case "missing_exterior":
			return "Polygon ohne Außenring"
		case "non_finite_ordinate":
			return "Ordinate ist NaN oder unendlich"
		case "invalid_geometry":
			return "ungültige Geometrie"
		}
	default: // "en"
		switch code {
		case "malformed_markup":
			return "input is not well-formed GML"
		case "invalid_ordinate":
			return "ordinate is not a number"
		case "incomplete_tuple":
			return "ordinate count is not a multiple of 3"
		case "truncated":
			return "too many surfaceMember elements"
		case "too_few_points":
			return "ring has too few points"
		case "ring_not_closed":
			return "ring is not closed"
		case "missing_exterior":
			return "polygon has no exterior ring"
		case "non_finite_ordinate":
			return "ordinate is NaN or infinite"
		case "invalid_geometry":
			return "invalid geometry"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"de").
func SetLanguage(lang string) {
	if lang != "de" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
