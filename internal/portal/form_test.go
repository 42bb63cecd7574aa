package portal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SundayYogurt/thesis_service/internal/domain"
	"github.com/SundayYogurt/thesis_service/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anaCruz() dto.SubmitThesisRequest {
	return dto.SubmitThesisRequest{
		UserType:          domain.UserTypeLPU,
		Name:              "Ana Cruz",
		StudentNumber:     "2021-0001",
		ProgramDepartment: "Computer Science",
		ThesisTitle:       "Thesis A",
	}
}

func TestNewFormDefaultsToLPU(t *testing.T) {
	f := NewForm(newMemStore(), nil)
	assert.Equal(t, domain.UserTypeLPU, f.Fields().UserType)
	assert.False(t, f.Submitting())
}

func TestSubmitSuccessResetsFields(t *testing.T) {
	store := newMemStore()
	notes := &recorder{}
	f := NewForm(store, notes)

	f.Fill(anaCruz())
	saved, err := f.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, store.inserts, 1)
	sent := store.inserts[0]
	assert.Equal(t, "Ana Cruz", sent.Name)
	assert.Equal(t, "2021-0001", sent.StudentNumber)
	assert.Equal(t, "Computer Science", sent.ProgramDepartment)
	assert.Empty(t, sent.SchoolName)

	require.NotNil(t, saved)
	assert.Nil(t, saved.SchoolName)

	assert.Equal(t, dto.SubmitThesisRequest{UserType: domain.UserTypeLPU}, f.Fields())
	assert.Empty(t, f.Errors())
	assert.Equal(t, "Success!", notes.last().Title)
	assert.Equal(t, "Your thesis record has been submitted.", notes.last().Description)
	assert.Equal(t, VariantDefault, notes.last().Variant)
}

func TestSubmitNonLPUSendsOnlySchool(t *testing.T) {
	store := newMemStore()
	f := NewForm(store, nil)

	f.Fill(dto.SubmitThesisRequest{
		UserType:          domain.UserTypeLPU,
		StudentNumber:     "typed before switching",
		ProgramDepartment: "typed before switching",
	})
	f.SetUserType(domain.UserTypeNonLPU)
	values := f.Fields()
	values.Name = "Ben Reyes"
	values.SchoolName = "Mapua University"
	values.ThesisTitle = "Thesis B"
	f.Fill(values)

	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, store.inserts, 1)
	assert.Empty(t, store.inserts[0].StudentNumber)
	assert.Empty(t, store.inserts[0].ProgramDepartment)
	assert.Equal(t, "Mapua University", store.inserts[0].SchoolName)
}

func TestSubmitWithEmptyRequiredFieldNeverInserts(t *testing.T) {
	cases := map[string]func(*dto.SubmitThesisRequest){
		"name":               func(r *dto.SubmitThesisRequest) { r.Name = "" },
		"thesis_title":       func(r *dto.SubmitThesisRequest) { r.ThesisTitle = "  " },
		"student_number":     func(r *dto.SubmitThesisRequest) { r.StudentNumber = "" },
		"program_department": func(r *dto.SubmitThesisRequest) { r.ProgramDepartment = "" },
	}

	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			store := newMemStore()
			notes := &recorder{}
			f := NewForm(store, notes)

			values := anaCruz()
			mutate(&values)
			f.Fill(values)

			_, err := f.Submit(context.Background())
			var ve *dto.ValidationError
			require.True(t, errors.As(err, &ve))

			assert.Equal(t, 0, store.insertCount())
			assert.Contains(t, f.Errors(), field)
			assert.Equal(t, values, f.Fields())
			assert.Equal(t, 0, notes.count())
		})
	}
}

func TestSubmitFailureKeepsFields(t *testing.T) {
	store := newMemStore()
	store.insertErr = domain.NewStoreError("insert", errors.New("network unreachable"))
	notes := &recorder{}
	f := NewForm(store, notes)

	f.Fill(anaCruz())
	_, err := f.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStore))

	assert.Equal(t, 1, store.insertCount())
	assert.Equal(t, anaCruz(), f.Fields())
	assert.Equal(t, "Error", notes.last().Title)
	assert.Equal(t, "Failed to submit thesis record. Please try again.", notes.last().Description)
	assert.Equal(t, VariantDestructive, notes.last().Variant)
}

func TestSubmitErrorsClearOnNextValidSubmit(t *testing.T) {
	f := NewForm(newMemStore(), nil)

	_, err := f.Submit(context.Background())
	require.Error(t, err)
	assert.NotEmpty(t, f.Errors())

	f.Fill(anaCruz())
	_, err = f.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, f.Errors())
}

func TestSubmitIsRejectedWhileInFlight(t *testing.T) {
	store := newMemStore()
	store.insertGate = make(chan struct{})
	f := NewForm(store, nil)
	f.Fill(anaCruz())

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = f.Submit(context.Background())
	}()

	require.Eventually(t, f.Submitting, time.Second, time.Millisecond)

	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(store.insertGate)
	wg.Wait()

	require.NoError(t, firstErr)
	assert.False(t, f.Submitting())
	assert.Equal(t, 1, store.insertCount())
}
