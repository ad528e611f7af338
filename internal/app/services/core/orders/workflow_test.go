package orders

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"labdesk-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cbcTest = models.LabTest{
		ID:                  "LT-001",
		Code:                "CBC",
		Name:                "Complete Blood Count",
		Category:            "hematology",
		SpecimenType:        models.SpecimenBlood,
		ProcessingTimeHours: 4,
		Price:               150,
	}
	glucoseTest = models.LabTest{
		ID:                  "LT-002",
		Code:                "GLU-F",
		Name:                "Blood Sugar Panel",
		Category:            "chemistry",
		SpecimenType:        models.SpecimenBlood,
		ProcessingTimeHours: 2,
		Price:               50,
		PreparationNotes:    "Fasting for 8 hours required",
	}
	cultureTest = models.LabTest{
		ID:                  "LT-003",
		Code:                "URC",
		Name:                "Urine Culture",
		Category:            "microbiology",
		SpecimenType:        models.SpecimenUrine,
		ProcessingTimeHours: 48,
		Price:               90,
	}
)

func draftAtStep(t *testing.T, step WorkflowStep) *OrderDraft {
	t.Helper()
	draft := NewOrderDraft("sess-1", time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC))
	if step >= StepSelectClinician {
		draft.SelectPatient(models.PatientRef{ID: "pat-1", Name: "Dana Cruz"})
		require.NoError(t, draft.Advance())
	}
	if step >= StepSelectTests {
		draft.SelectClinician(models.ClinicianRef{ID: "cli-1", Name: "Dr. Osei"})
		require.NoError(t, draft.Advance())
	}
	if step >= StepReviewAndSubmit {
		draft.ToggleTest(cbcTest)
		require.NoError(t, draft.Advance())
	}
	return draft
}

func TestAdvanceGuards(t *testing.T) {
	t.Run("Patient step blocks without a patient", func(t *testing.T) {
		draft := NewOrderDraft("sess-1", time.Now())

		err := draft.Advance()
		var guardErr *GuardError
		require.ErrorAs(t, err, &guardErr)
		assert.Equal(t, GuardPatientSelected, guardErr.Guard)
		assert.Equal(t, StepSelectPatient, draft.Step)
	})

	t.Run("Clinician step blocks without a clinician", func(t *testing.T) {
		draft := draftAtStep(t, StepSelectClinician)

		err := draft.Advance()
		var guardErr *GuardError
		require.ErrorAs(t, err, &guardErr)
		assert.Equal(t, GuardClinicianSelected, guardErr.Guard)
	})

	t.Run("Test step blocks with no selected tests", func(t *testing.T) {
		draft := draftAtStep(t, StepSelectTests)

		err := draft.Advance()
		var guardErr *GuardError
		require.ErrorAs(t, err, &guardErr)
		assert.Equal(t, GuardTestsNotEmpty, guardErr.Guard)
	})

	t.Run("Review step never advances by navigation", func(t *testing.T) {
		draft := draftAtStep(t, StepReviewAndSubmit)

		err := draft.Advance()
		var guardErr *GuardError
		require.ErrorAs(t, err, &guardErr)
		assert.Equal(t, GuardNotSubmitted, guardErr.Guard)
	})

	t.Run("Happy path reaches review", func(t *testing.T) {
		draft := draftAtStep(t, StepReviewAndSubmit)
		assert.Equal(t, StepReviewAndSubmit, draft.Step)
	})
}

func TestBack(t *testing.T) {
	draft := draftAtStep(t, StepReviewAndSubmit)

	draft.Back()
	assert.Equal(t, StepSelectTests, draft.Step)
	draft.Back()
	assert.Equal(t, StepSelectClinician, draft.Step)
	draft.Back()
	assert.Equal(t, StepSelectPatient, draft.Step)
	draft.Back()
	assert.Equal(t, StepSelectPatient, draft.Step)
}

func TestToggleTest(t *testing.T) {
	t.Run("Toggle twice removes the entry", func(t *testing.T) {
		draft := draftAtStep(t, StepSelectTests)

		draft.ToggleTest(cbcTest)
		require.Len(t, draft.SelectedTests, 1)
		draft.ToggleTest(cbcTest)
		assert.Empty(t, draft.SelectedTests)
	})

	t.Run("No duplicate entries per test ID", func(t *testing.T) {
		draft := draftAtStep(t, StepSelectTests)

		draft.ToggleTest(cbcTest)
		draft.ToggleTest(glucoseTest)
		draft.ToggleTest(cbcTest)
		draft.ToggleTest(cbcTest)

		ids := map[string]int{}
		for _, entry := range draft.SelectedTests {
			ids[entry.Test.ID]++
		}
		for id, count := range ids {
			assert.Equal(t, 1, count, "test %s selected more than once", id)
		}
	})

	t.Run("Removal keeps relative order", func(t *testing.T) {
		draft := draftAtStep(t, StepSelectTests)

		draft.ToggleTest(cbcTest)
		draft.ToggleTest(glucoseTest)
		draft.ToggleTest(cultureTest)
		draft.ToggleTest(glucoseTest)

		require.Len(t, draft.SelectedTests, 2)
		assert.Equal(t, cbcTest.ID, draft.SelectedTests[0].Test.ID)
		assert.Equal(t, cultureTest.ID, draft.SelectedTests[1].Test.ID)
	})

	t.Run("Random toggle sequence never duplicates", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		catalog := []models.LabTest{cbcTest, glucoseTest, cultureTest}
		draft := draftAtStep(t, StepSelectTests)
		selected := map[string]bool{}

		for i := 0; i < 500; i++ {
			test := catalog[rng.Intn(len(catalog))]
			draft.ToggleTest(test)
			selected[test.ID] = !selected[test.ID]

			seen := map[string]bool{}
			for _, entry := range draft.SelectedTests {
				require.False(t, seen[entry.Test.ID], "duplicate entry after %d toggles", i+1)
				seen[entry.Test.ID] = true
			}
			for id, want := range selected {
				assert.Equal(t, want, seen[id], "membership mismatch for %s after %d toggles", id, i+1)
			}
		}
	})
}

func TestFastingDerivation(t *testing.T) {
	t.Run("Derived from code", func(t *testing.T) {
		test := models.LabTest{ID: "LT-010", Code: "LIPID-P", Name: "Panel"}
		assert.True(t, DeriveRequiresFasting(test))
	})

	t.Run("Derived from preparation notes", func(t *testing.T) {
		assert.True(t, DeriveRequiresFasting(glucoseTest))
	})

	t.Run("Name alone does not trigger", func(t *testing.T) {
		test := models.LabTest{ID: "LT-011", Code: "XYZ", Name: "Glucose Check"}
		assert.False(t, DeriveRequiresFasting(test))
	})

	t.Run("Manual override is sticky", func(t *testing.T) {
		draft := draftAtStep(t, StepSelectTests)
		draft.ToggleTest(glucoseTest)
		require.True(t, draft.SelectedTests[0].RequiresFasting)

		off := false
		require.True(t, draft.SetTestFlags(glucoseTest.ID, nil, nil, &off, nil))
		assert.False(t, draft.SelectedTests[0].RequiresFasting)
		assert.True(t, draft.SelectedTests[0].FastingSetByUser)

		// Later flag edits leave the override in place.
		urgent := true
		require.True(t, draft.SetTestFlags(glucoseTest.ID, &urgent, nil, nil, nil))
		assert.False(t, draft.SelectedTests[0].RequiresFasting)
		assert.True(t, draft.SelectedTests[0].FastingSetByUser)
	})
}

func TestDerivedValues(t *testing.T) {
	draft := draftAtStep(t, StepSelectTests)
	draft.ToggleTest(cbcTest)
	draft.ToggleTest(glucoseTest)
	draft.ToggleTest(cultureTest)

	urgent := true
	stat := true
	require.True(t, draft.SetTestFlags(cbcTest.ID, &urgent, nil, nil, nil))
	require.True(t, draft.SetTestFlags(glucoseTest.ID, nil, &stat, nil, nil))

	assert.Equal(t, 290.0, draft.TotalCost())
	assert.Equal(t, 48, draft.MaxProcessingTimeHours())
	assert.Equal(t, 2, draft.UrgentTestCount())

	collection := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	draft.SetCollectionDate(collection)
	assert.Equal(t, collection.AddDate(0, 0, 2), draft.ExpectedDeliveryDate())
}

func TestExpectedDeliveryDateRoundsUp(t *testing.T) {
	collection := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		hours int
		days  int
	}{
		{0, 0},
		{1, 1},
		{24, 1},
		{25, 2},
		{48, 2},
		{49, 3},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d hours", tc.hours), func(t *testing.T) {
			draft := NewOrderDraft("sess-1", collection)
			draft.ToggleTest(models.LabTest{ID: "LT-X", Code: "X", ProcessingTimeHours: tc.hours})
			assert.Equal(t, collection.AddDate(0, 0, tc.days), draft.ExpectedDeliveryDate())
		})
	}
}

func TestSubmit(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	t.Run("Blocked before review step", func(t *testing.T) {
		draft := draftAtStep(t, StepSelectTests)

		_, err := draft.Submit(now)
		var guardErr *GuardError
		require.ErrorAs(t, err, &guardErr)
		assert.Equal(t, GuardNotSubmitted, guardErr.Guard)
	})

	t.Run("Urgent priority requires justification", func(t *testing.T) {
		draft := draftAtStep(t, StepReviewAndSubmit)
		draft.SetPriority(models.PriorityUrgent)
		draft.SetUrgentJustification("   ")

		_, err := draft.Submit(now)
		var guardErr *GuardError
		require.ErrorAs(t, err, &guardErr)
		assert.Equal(t, GuardUrgentJustified, guardErr.Guard)
		assert.Equal(t, StepReviewAndSubmit, draft.Step)
	})

	t.Run("Stat priority requires justification", func(t *testing.T) {
		draft := draftAtStep(t, StepReviewAndSubmit)
		draft.SetPriority(models.PriorityStat)

		_, err := draft.Submit(now)
		var guardErr *GuardError
		require.ErrorAs(t, err, &guardErr)
		assert.Equal(t, GuardUrgentJustified, guardErr.Guard)
	})

	t.Run("Routine priority needs no justification", func(t *testing.T) {
		draft := draftAtStep(t, StepReviewAndSubmit)

		request, err := draft.Submit(now)
		require.NoError(t, err)
		assert.Equal(t, StepSubmitted, draft.Step)
		assert.Equal(t, now, request.SubmittedAt)
	})

	t.Run("Snapshot carries the derived values", func(t *testing.T) {
		draft := draftAtStep(t, StepReviewAndSubmit)
		draft.SetPriority(models.PriorityUrgent)
		draft.SetUrgentJustification("pre-op clearance this afternoon")
		draft.SetClinicalNotes("patient on anticoagulants")

		request, err := draft.Submit(now)
		require.NoError(t, err)

		assert.Equal(t, "pat-1", request.Patient.ID)
		assert.Equal(t, "cli-1", request.Clinician.ID)
		require.Len(t, request.Tests, 1)
		assert.Equal(t, draft.TotalCost(), request.TotalCost)
		assert.Equal(t, draft.MaxProcessingTimeHours(), request.MaxProcessingTimeHours)
		assert.Equal(t, draft.ExpectedDeliveryDate(), request.ExpectedDeliveryDate)
		assert.Equal(t, "pre-op clearance this afternoon", request.UrgentJustification)
	})

	t.Run("Snapshot is detached from later edits", func(t *testing.T) {
		draft := draftAtStep(t, StepReviewAndSubmit)

		request, err := draft.Submit(now)
		require.NoError(t, err)

		draft.SelectedTests[0].Notes = "edited after submit"
		assert.Empty(t, request.Tests[0].Notes)
	})

	t.Run("Second submit is blocked", func(t *testing.T) {
		draft := draftAtStep(t, StepReviewAndSubmit)

		_, err := draft.Submit(now)
		require.NoError(t, err)

		_, err = draft.Submit(now)
		var guardErr *GuardError
		require.ErrorAs(t, err, &guardErr)
		assert.Equal(t, GuardNotSubmitted, guardErr.Guard)
	})
}

func TestReset(t *testing.T) {
	draft := draftAtStep(t, StepReviewAndSubmit)
	draft.SetPriority(models.PriorityUrgent)
	draft.SetUrgentJustification("icu admission")

	resetAt := time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC)
	draft.Reset(resetAt)

	assert.Equal(t, "sess-1", draft.SessionID)
	assert.Equal(t, StepSelectPatient, draft.Step)
	assert.Nil(t, draft.Patient)
	assert.Nil(t, draft.Clinician)
	assert.Empty(t, draft.SelectedTests)
	assert.Equal(t, models.PriorityRoutine, draft.Priority)
	assert.Empty(t, draft.UrgentJustification)
	assert.Equal(t, resetAt, draft.CreatedAt)
}
