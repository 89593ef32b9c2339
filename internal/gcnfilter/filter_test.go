package gcnfilter

import (
	"testing"

	"sky-herald.io/herald/internal/prefs"
)

func TestParsePropertyFilter(t *testing.T) {
	tests := []struct {
		expr    string
		want    PropertyFilter
		wantErr bool
	}{
		{expr: "far:1e-8:lt", want: PropertyFilter{Name: "far", Threshold: 1e-8, Op: OpLT}},
		{expr: "BNS:0.9:ge", want: PropertyFilter{Name: "BNS", Threshold: 0.9, Op: OpGE}},
		{expr: "num_instruments:2:eq", want: PropertyFilter{Name: "num_instruments", Threshold: 2, Op: OpEQ}},
		{expr: "far:-3.5:ne", want: PropertyFilter{Name: "far", Threshold: -3.5, Op: OpNE}},
		{expr: "far:1e-8", wantErr: true},
		{expr: "far:1e-8:lt:extra", wantErr: true},
		{expr: "far:abc:lt", wantErr: true},
		{expr: "far:1.0:between", wantErr: true},
		{expr: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParsePropertyFilter(tt.expr)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePropertyFilter(%q) expected error", tt.expr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePropertyFilter(%q) error = %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("ParsePropertyFilter(%q) = %+v, want %+v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestPropertyFilter_Matches(t *testing.T) {
	tests := []struct {
		op    Comparator
		value float64
		want  bool
	}{
		{OpLT, 0.5, true}, {OpLT, 1.0, false},
		{OpLE, 1.0, true}, {OpLE, 1.1, false},
		{OpEQ, 1.0, true}, {OpEQ, 0.9, false},
		{OpNE, 0.9, true}, {OpNE, 1.0, false},
		{OpGE, 1.0, true}, {OpGE, 0.9, false},
		{OpGT, 1.5, true}, {OpGT, 1.0, false},
	}
	for _, tt := range tests {
		f := PropertyFilter{Name: "x", Threshold: 1.0, Op: tt.op}
		if got := f.Matches(tt.value); got != tt.want {
			t.Errorf("op %s against %v = %v, want %v", tt.op, tt.value, got, tt.want)
		}
	}
}

func TestMatchesSubscription_OrAcrossSets(t *testing.T) {
	sets := map[string]prefs.GcnFilterSet{
		"grb": {Tags: []string{"GRB"}},
		"gw":  {Tags: []string{"GW"}},
	}
	event := EventData{Tags: []string{"GRB"}, BareNotice: true}

	ok, err := MatchesSubscription(sets, event)
	if err != nil {
		t.Fatalf("MatchesSubscription() error = %v", err)
	}
	if !ok {
		t.Fatal("one fully matching set should be enough")
	}

	ok, err = MatchesSubscription(sets, EventData{Tags: []string{"Neutrino"}, BareNotice: true})
	if err != nil {
		t.Fatalf("MatchesSubscription() error = %v", err)
	}
	if ok {
		t.Fatal("no set matches, user should not be notified")
	}
}

func TestMatchesSubscription_AndWithinSet(t *testing.T) {
	sets := map[string]prefs.GcnFilterSet{
		"strict": {
			NoticeTypes: []string{"LVC_INITIAL"},
			Tags:        []string{"GW"},
		},
	}
	event := EventData{
		NoticeType: "LVC_INITIAL",
		Tags:       []string{"GRB"}, // tag condition fails
		BareNotice: true,
	}

	ok, err := MatchesSubscription(sets, event)
	if err != nil {
		t.Fatalf("MatchesSubscription() error = %v", err)
	}
	if ok {
		t.Fatal("all conditions within a set must pass")
	}
}

func TestMatchesSubscription_EmptySubscriptionNeverMatches(t *testing.T) {
	ok, err := MatchesSubscription(nil, EventData{Tags: []string{"GRB"}})
	if err != nil {
		t.Fatalf("MatchesSubscription() error = %v", err)
	}
	if ok {
		t.Fatal("zero configured sets means no subscription, not match-everything")
	}
}

func TestMatchesSubscription_NoticeTypeSkippedWhenUndecoded(t *testing.T) {
	sets := map[string]prefs.GcnFilterSet{
		"typed": {NoticeTypes: []string{"FERMI_GBM_FIN_POS"}},
	}
	// Raw JSON notices carry no decoded type; the condition is skipped.
	ok, err := MatchesSubscription(sets, EventData{NoticeType: "", BareNotice: true})
	if err != nil {
		t.Fatalf("MatchesSubscription() error = %v", err)
	}
	if !ok {
		t.Fatal("notice-type condition must be skipped for undecoded notices")
	}
}

func TestMatchesSubscription_AnyWholeRecordMustPass(t *testing.T) {
	sets := map[string]prefs.GcnFilterSet{
		"gw": {Properties: []string{"far:1e-8:lt", "BNS:0.5:ge"}},
	}

	// Record 1 passes far but fails BNS; record 2 passes both.
	event := EventData{
		BareNotice: true,
		Properties: []map[string]interface{}{
			{"far": 1e-9, "BNS": 0.1},
			{"far": 1e-10, "BNS": 0.8},
		},
	}
	ok, err := MatchesSubscription(sets, event)
	if err != nil {
		t.Fatalf("MatchesSubscription() error = %v", err)
	}
	if !ok {
		t.Fatal("a record passing every filter should match")
	}

	// Each record passes one filter but no record passes both.
	split := EventData{
		BareNotice: true,
		Properties: []map[string]interface{}{
			{"far": 1e-9, "BNS": 0.1},
			{"far": 1.0, "BNS": 0.8},
		},
	}
	ok, err = MatchesSubscription(sets, split)
	if err != nil {
		t.Fatalf("MatchesSubscription() error = %v", err)
	}
	if ok {
		t.Fatal("partial passes across different records must not match")
	}
}

func TestMatchesSubscription_AbsentPropertyPasses(t *testing.T) {
	sets := map[string]prefs.GcnFilterSet{
		"gw": {Properties: []string{"far:1e-8:lt"}},
	}
	event := EventData{
		BareNotice: true,
		Properties: []map[string]interface{}{{"BNS": 0.8}},
	}
	ok, err := MatchesSubscription(sets, event)
	if err != nil {
		t.Fatalf("MatchesSubscription() error = %v", err)
	}
	if !ok {
		t.Fatal("a filter naming an absent property passes for that record")
	}
}

func TestMatchesSubscription_MalformedFilterIsHardError(t *testing.T) {
	sets := map[string]prefs.GcnFilterSet{
		"bad": {Properties: []string{"far:oops:lt"}},
	}
	event := EventData{
		BareNotice: true,
		Properties: []map[string]interface{}{{"far": 1e-9}},
	}
	if _, err := MatchesSubscription(sets, event); err == nil {
		t.Fatal("malformed filter must surface as an error, not be skipped")
	}
}

func TestMatchesSubscription_LocalizationConditions(t *testing.T) {
	sets := map[string]prefs.GcnFilterSet{
		"loc": {
			LocalizationTags:       []string{"BAYESTAR"},
			LocalizationProperties: []string{"area_90:500:lt"},
		},
	}

	matching := EventData{
		LocalizationTags:       []string{"BAYESTAR", "preliminary"},
		LocalizationProperties: []map[string]interface{}{{"area_90": 120.5}},
	}
	ok, err := MatchesSubscription(sets, matching)
	if err != nil {
		t.Fatalf("MatchesSubscription() error = %v", err)
	}
	if !ok {
		t.Fatal("localization conditions should match")
	}

	// Bare-notice events skip localization conditions entirely.
	bare := EventData{BareNotice: true}
	ok, err = MatchesSubscription(sets, bare)
	if err != nil {
		t.Fatalf("MatchesSubscription() error = %v", err)
	}
	if !ok {
		t.Fatal("localization conditions must be skipped for bare notices")
	}
}
