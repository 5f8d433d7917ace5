package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func TestCreatePermission(t *testing.T) {
	t.Run("short note rejected client-side", func(t *testing.T) {
		called := false
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})
		defer srv.Close()

		in := PermissionCreate{
			Date: "2026-03-02", EmployeeID: 7,
			ProjectCode: "IB-INTERNO", Phase: "PERMISOS", Discipline: "PERMISOS",
			Activity: "PERMISO_MEDICO", Hours: 8,
			Note: "hi",
		}
		if _, err := c.CreatePermission(context.Background(), in); err == nil {
			t.Error("CreatePermission() with 2-char note returned nil error")
		}
		if called {
			t.Error("request was sent despite failing validation")
		}
	})

	t.Run("posts to the permissions collection", func(t *testing.T) {
		var gotPath string
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{"id":"p1","status":""}`))
		})
		defer srv.Close()

		in := PermissionCreate{
			Date: "2026-03-02", EmployeeID: 7,
			ProjectCode: "IB-INTERNO", Phase: "PERMISOS", Discipline: "PERMISOS",
			Activity: "PERMISO_REMUNERADO", Hours: 8,
			Note: "medical appointment",
		}
		entry, err := c.CreatePermission(context.Background(), in)
		if err != nil {
			t.Fatalf("CreatePermission() returned unexpected error: %v", err)
		}
		if gotPath != "/permissions/" {
			t.Errorf("path = %q, want /permissions/", gotPath)
		}
		if entry.ID != "p1" {
			t.Errorf("entry.ID = %q, want p1", entry.ID)
		}
	})
}

func TestUpdatePermission(t *testing.T) {
	var gotBody map[string]any
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/permissions/p1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotBody)
		w.Write([]byte(`{"id":"p1"}`))
	})
	defer srv.Close()

	_, err := c.UpdatePermission(context.Background(), "p1", PermissionUpdate{
		ProjectCode: "IB-INTERNO", Phase: "PERMISOS", Discipline: "PERMISOS",
		Activity: "OTRO", Hours: 4, Note: "half day errand",
	})
	if err != nil {
		t.Fatalf("UpdatePermission() returned unexpected error: %v", err)
	}
	for _, field := range []string{"date", "employee_id", "status", "response"} {
		if _, ok := gotBody[field]; ok {
			t.Errorf("PUT body contains read-only field %q", field)
		}
	}
}

func TestPermissionsQuery(t *testing.T) {
	t.Run("empty bounds omitted", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("employee_id") != "7" {
				t.Errorf("employee_id = %q, want 7", q.Get("employee_id"))
			}
			if _, ok := q["start_date"]; ok {
				t.Error("empty start_date was sent")
			}
			if _, ok := q["end_date"]; ok {
				t.Error("empty end_date was sent")
			}
			w.Write([]byte(`[]`))
		})
		defer srv.Close()

		if _, err := c.Permissions(context.Background(), 7, "", ""); err != nil {
			t.Fatalf("Permissions() returned unexpected error: %v", err)
		}
	})

	t.Run("bounds included when set", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("start_date") != "2026-03-01" || q.Get("end_date") != "2026-03-31" {
				t.Errorf("query = %v, want bounded range", q)
			}
			w.Write([]byte(`[]`))
		})
		defer srv.Close()

		if _, err := c.Permissions(context.Background(), 7, "2026-03-01", "2026-03-31"); err != nil {
			t.Fatalf("Permissions() returned unexpected error: %v", err)
		}
	})
}
