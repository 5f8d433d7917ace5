package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func TestCreateHour(t *testing.T) {
	t.Run("posts full body", func(t *testing.T) {
		var gotBody map[string]any
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/hours/" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			data, _ := io.ReadAll(r.Body)
			json.Unmarshal(data, &gotBody)
			w.Write([]byte(`{"id":"h1","date":"2026-03-02","employee_id":7,"hours":1.5}`))
		})
		defer srv.Close()

		entry, err := c.CreateHour(context.Background(), HourCreate{
			Date:        "2026-03-02",
			EmployeeID:  7,
			ProjectCode: "P-100",
			Phase:       "DESIGN",
			Discipline:  "CIVIL",
			Activity:    "DRAWINGS",
			Hours:       1.5,
			Note:        "morning",
		})
		if err != nil {
			t.Fatalf("CreateHour() returned unexpected error: %v", err)
		}
		if entry.ID != "h1" {
			t.Errorf("entry.ID = %q, want h1", entry.ID)
		}
		if gotBody["date"] != "2026-03-02" {
			t.Errorf("body date = %v, want 2026-03-02", gotBody["date"])
		}
		if gotBody["employee_id"] != float64(7) {
			t.Errorf("body employee_id = %v, want 7", gotBody["employee_id"])
		}
	})

	t.Run("rejects out-of-range hours client-side", func(t *testing.T) {
		called := false
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})
		defer srv.Close()

		in := HourCreate{
			Date: "2026-03-02", EmployeeID: 7,
			ProjectCode: "P", Phase: "S", Discipline: "D", Activity: "A",
			Hours: 25,
		}
		if _, err := c.CreateHour(context.Background(), in); err == nil {
			t.Error("CreateHour() with 25 hours returned nil error")
		}
		if called {
			t.Error("request was sent despite failing validation")
		}
	})
}

func TestUpdateHour(t *testing.T) {
	t.Run("put body excludes immutable fields", func(t *testing.T) {
		var gotBody map[string]any
		var gotPath, gotMethod string
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotMethod = r.Method
			data, _ := io.ReadAll(r.Body)
			json.Unmarshal(data, &gotBody)
			w.Write([]byte(`{"id":"h1","hours":3.25}`))
		})
		defer srv.Close()

		entry, err := c.UpdateHour(context.Background(), "h1", HourUpdate{
			ProjectCode: "P-100",
			Phase:       "DESIGN",
			Discipline:  "CIVIL",
			Activity:    "DRAWINGS",
			Hours:       3.25,
		})
		if err != nil {
			t.Fatalf("UpdateHour() returned unexpected error: %v", err)
		}
		if gotMethod != http.MethodPut || gotPath != "/hours/h1" {
			t.Errorf("request = %s %s, want PUT /hours/h1", gotMethod, gotPath)
		}
		if entry.Hours != 3.25 {
			t.Errorf("entry.Hours = %v, want 3.25", entry.Hours)
		}

		for _, field := range []string{"date", "id", "employee_id", "project_name"} {
			if _, ok := gotBody[field]; ok {
				t.Errorf("PUT body contains immutable field %q", field)
			}
		}
	})
}

func TestDailyActivities(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/daily-activities" {
			t.Errorf("path = %q, want /daily-activities", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("date") != "2026-03-02" || q.Get("employee_id") != "7" {
			t.Errorf("query = %v, want date and employee_id set", q)
		}
		w.Write([]byte(`[{"id":"h1","hours":2},{"id":"h2","hours":1.5}]`))
	})
	defer srv.Close()

	entries, err := c.DailyActivities(context.Background(), "2026-03-02", 7)
	if err != nil {
		t.Fatalf("DailyActivities() returned unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
}

func TestReportEndpoints(t *testing.T) {
	t.Run("monthly matrix path", func(t *testing.T) {
		var gotPath string
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`[{"date":"2026-03-02","employee_id":"7","short_name":"MLO","hours":8}]`))
		})
		defer srv.Close()

		rows, err := c.MonthlyMatrix(context.Background(), 2026, 3)
		if err != nil {
			t.Fatalf("MonthlyMatrix() returned unexpected error: %v", err)
		}
		if gotPath != "/hours/monthly-matrix/2026/3" {
			t.Errorf("path = %q, want /hours/monthly-matrix/2026/3", gotPath)
		}
		if len(rows) != 1 || rows[0].EmployeeID != "7" {
			t.Errorf("rows = %+v, want one row with string employee id", rows)
		}
	})

	t.Run("grouped by employee query", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("year") != "2026" || q.Get("month") != "3" {
				t.Errorf("query = %v, want year=2026 month=3", q)
			}
			w.Write([]byte(`[]`))
		})
		defer srv.Close()

		if _, err := c.GroupedByEmployee(context.Background(), 2026, 3); err != nil {
			t.Fatalf("GroupedByEmployee() returned unexpected error: %v", err)
		}
	})
}
