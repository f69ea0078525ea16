package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mform/pkg/model"
)

type stubDriver struct {
	inputs    []string
	selectIdx []int
	multiIdx  [][]int
	confirm   []bool
	textAreas []string
	err       error

	inputPos   int
	selectPos  int
	multiPos   int
	confirmPos int
	textPos    int

	selects []SelectConfig
	infos   []string
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selects = append(s.selects, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	s.selects = append(s.selects, cfg)
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func TestCollectValues_ByFieldType(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Hello", "12"},
		textAreas: []string{"Body"},
		selectIdx: []int{1},
		multiIdx:  [][]int{{0, 2}},
		confirm:   []bool{true},
	}
	fields := []model.Field{
		{Type: model.FieldTypeHeadline, Value: "Intro"},
		{Type: model.FieldTypeText, ID: "1", Label: "Title"},
		{Type: model.FieldTypeHidden, ID: "9"},
		{Type: model.FieldTypeTextarea, ID: "2"},
		{Type: model.FieldTypeSelect, ID: "3", Options: []model.Option{model.Opt("a", "A"), model.Opt("b", "B")}},
		{Type: model.FieldTypeMultiselect, ID: "4", Options: []model.Option{
			model.Opt("x", "X"),
			model.Group("More", model.Opt("y", "Y"), model.Opt("z", "Z")),
		}},
		{Type: model.FieldTypeCheckbox, ID: "5", Options: []model.Option{model.Opt("on", "Active")}},
		{Type: model.FieldTypeMedia, ID: "6"},
	}

	values, err := CollectValues(context.Background(), driver, fields, map[string]string{"9": "keep"})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := map[string]string{
		"1": "Hello",
		"2": "Body",
		"3": "b",
		"4": "x,z",
		"5": "on",
		"6": "12",
		"9": "keep",
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectValues_SeedsDefaultsFromCurrent(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{0},
		multiIdx:  [][]int{{}},
	}
	fields := []model.Field{
		{Type: model.FieldTypeRadio, ID: "1", Options: []model.Option{model.Opt("a", "A"), model.Opt("b", "B")}},
		{Type: model.FieldTypeMulticheckbox, ID: "2", Options: []model.Option{model.Opt("a", "A"), model.Opt("b", "B")}},
	}
	current := map[string]string{"1": "b", "2": "b, a"}

	values, err := CollectValues(context.Background(), driver, fields, current)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if driver.selects[0].DefaultIndex != 1 {
		t.Fatalf("expected radio default index 1, got %d", driver.selects[0].DefaultIndex)
	}
	if diff := cmp.Diff([]int{1, 0}, driver.selects[1].Defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if values["1"] != "a" || values["2"] != "" {
		t.Fatalf("unexpected values %v", values)
	}
	if current["1"] != "b" {
		t.Fatalf("current values must not be modified")
	}
}

func TestCollectValues_UncheckedCheckboxIsEmpty(t *testing.T) {
	driver := &stubDriver{confirm: []bool{false}}
	fields := []model.Field{{Type: model.FieldTypeCheckbox, ID: "1", Options: []model.Option{model.Opt("1", "On")}}}

	values, err := CollectValues(context.Background(), driver, fields, map[string]string{"1": "1"})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if values["1"] != "" {
		t.Fatalf("expected empty value, got %q", values["1"])
	}
}

func TestCollectValues_Errors(t *testing.T) {
	fields := []model.Field{{Type: model.FieldTypeText, ID: "1"}}

	if _, err := CollectValues(context.Background(), nil, fields, nil); err == nil {
		t.Fatalf("expected missing driver to fail")
	}

	_, err := CollectValues(context.Background(), &stubDriver{err: ErrAborted}, fields, nil)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := CollectValues(ctx, &stubDriver{inputs: []string{"x"}}, fields, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSelectHelpers(t *testing.T) {
	options := []string{"a", "b", "c"}
	if got := indexOf(options, "c"); got != 2 {
		t.Fatalf("indexOf = %d", got)
	}
	if diff := cmp.Diff([]int{0, 2}, indicesOf(options, []string{"c", "a"})); diff != "" {
		t.Fatalf("indicesOf mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b"}, defaultsFromIndices(options, []int{1, 7})); diff != "" {
		t.Fatalf("defaultsFromIndices mismatch (-want +got):\n%s", diff)
	}
}
