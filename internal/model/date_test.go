package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"task-tracker/internal/model"
)

func TestTaskJSON(t *testing.T) {
	body := `{"id":1,"title":"Writing","description":"ABCD","dueDate":"2023-09-20","status":"started"}`

	var task model.Task
	if err := json.Unmarshal([]byte(body), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if task.DueDate != model.NewDate(2023, time.September, 20) {
		t.Errorf("unexpected due date: %v", task.DueDate)
	}

	out, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != body {
		t.Errorf("round trip mismatch:\n got  %s\n want %s", out, body)
	}
}

func TestDateJSONNull(t *testing.T) {
	var task model.Task
	if err := json.Unmarshal([]byte(`{"id":2,"dueDate":null}`), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !task.DueDate.IsZero() {
		t.Errorf("expected zero date, got %v", task.DueDate)
	}

	out, _ := json.Marshal(task.DueDate)
	if string(out) != "null" {
		t.Errorf("expected null, got %s", out)
	}
}

func TestDateJSONInvalid(t *testing.T) {
	var d model.Date
	if err := json.Unmarshal([]byte(`"20/09/2023"`), &d); err == nil {
		t.Errorf("expected error for non-ISO date")
	}
	if err := json.Unmarshal([]byte(`20230920`), &d); err == nil {
		t.Errorf("expected error for number")
	}
}

func TestDateScan(t *testing.T) {
	want := model.NewDate(2023, time.September, 20)

	tests := []struct {
		name string
		src  any
		want model.Date
	}{
		{name: "time.Time", src: time.Date(2023, 9, 20, 0, 0, 0, 0, time.UTC), want: want},
		{name: "bytes", src: []byte("2023-09-20"), want: want},
		{name: "string with time", src: "2023-09-20T00:00:00Z", want: want},
		{name: "nil", src: nil, want: model.Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d model.Date
			if err := d.Scan(tt.src); err != nil {
				t.Fatalf("scan: %v", err)
			}
			if d != tt.want {
				t.Errorf("got %v, want %v", d, tt.want)
			}
		})
	}

	var d model.Date
	if err := d.Scan(42); err == nil {
		t.Errorf("expected error scanning int")
	}
}

func TestDateValue(t *testing.T) {
	v, err := model.Date{}.Value()
	if err != nil || v != nil {
		t.Errorf("zero date should be NULL, got %v, %v", v, err)
	}

	v, _ = model.NewDate(2024, time.May, 1).Value()
	if v != "2024-05-01" {
		t.Errorf("unexpected value %v", v)
	}
}
