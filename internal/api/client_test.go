package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, 5*time.Second), srv
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	c := New("http://example.test/", time.Second)
	if c.baseURL != "http://example.test" {
		t.Errorf("baseURL = %q, want trailing slash removed", c.baseURL)
	}
}

func TestErrorDetail(t *testing.T) {
	t.Run("detail from envelope", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "hours must be positive"})
		})
		defer srv.Close()

		err := c.do(context.Background(), http.MethodGet, "/x", nil, nil, nil)
		var apiErr *Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("do() error = %v, want *Error", err)
		}
		if apiErr.Status != http.StatusBadRequest {
			t.Errorf("Status = %d, want 400", apiErr.Status)
		}
		if apiErr.Detail != "hours must be positive" {
			t.Errorf("Detail = %q, want server detail", apiErr.Detail)
		}
	})

	t.Run("no envelope", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("nope"))
		})
		defer srv.Close()

		err := c.do(context.Background(), http.MethodGet, "/x", nil, nil, nil)
		var apiErr *Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("do() error = %v, want *Error", err)
		}
		if apiErr.Detail != "" {
			t.Errorf("Detail = %q, want empty", apiErr.Detail)
		}
		want := "server error 500"
		if apiErr.Error() != want {
			t.Errorf("Error() = %q, want %q", apiErr.Error(), want)
		}
	})
}

func TestCompositeSegment(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"plain", []string{"P-100", "DESIGN"}, "P-100::DESIGN"},
		{"space encoded", []string{"P 100", "FASE 1"}, "P%20100::FASE%201"},
		{"slash encoded", []string{"A/B", "C"}, "A%2FB::C"},
		{"three parts", []string{"P", "S", "D"}, "P::S::D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compositeSegment(tt.parts...); got != tt.want {
				t.Errorf("compositeSegment(%v) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestCleanStrings(t *testing.T) {
	tests := []struct {
		name string
		raw  []any
		want []string
	}{
		{"drops nil and empty", []any{"A", nil, "", "B"}, []string{"A", "B"}},
		{"dedup preserves order", []any{"B", "A", "B"}, []string{"B", "A"}},
		{"whole number renders bare", []any{float64(100)}, []string{"100"}},
		{"fractional number", []any{1.5}, []string{"1.5"}},
		{"mixed", []any{"X", float64(2), nil, "X"}, []string{"X", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanStrings(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("cleanStrings(%v) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("cleanStrings(%v)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCatalogPaths(t *testing.T) {
	var gotPath string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		json.NewEncoder(w).Encode([]any{"OPT"})
	})
	defer srv.Close()

	t.Run("stages", func(t *testing.T) {
		if _, err := c.Stages(context.Background(), "P 100"); err != nil {
			t.Fatalf("Stages() returned unexpected error: %v", err)
		}
		want := "/activities/project/P%20100/stages"
		if gotPath != want {
			t.Errorf("path = %q, want %q", gotPath, want)
		}
	})

	t.Run("disciplines use composite segment", func(t *testing.T) {
		if _, err := c.Disciplines(context.Background(), "P-100", "FASE 1"); err != nil {
			t.Fatalf("Disciplines() returned unexpected error: %v", err)
		}
		want := "/activities/P-100::FASE%201/disciplines"
		if gotPath != want {
			t.Errorf("path = %q, want %q", gotPath, want)
		}
	})

	t.Run("activities use composite segment", func(t *testing.T) {
		if _, err := c.Activities(context.Background(), "P-100", "FASE 1", "CIVIL"); err != nil {
			t.Fatalf("Activities() returned unexpected error: %v", err)
		}
		want := "/activities/P-100::FASE%201::CIVIL/activities"
		if gotPath != want {
			t.Errorf("path = %q, want %q", gotPath, want)
		}
	})
}

func TestEmployees(t *testing.T) {
	var gotPath string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 7, "name": "Ana Castillo", "short_name": "ACA"},
			{"id": 12, "name": "Mario Lopez", "short_name": "MLO"},
		})
	})
	defer srv.Close()

	employees, err := c.Employees(context.Background())
	if err != nil {
		t.Fatalf("Employees() returned unexpected error: %v", err)
	}
	if gotPath != "/employees/" {
		t.Errorf("path = %q, want /employees/", gotPath)
	}
	if len(employees) != 2 {
		t.Fatalf("got %d employees, want 2", len(employees))
	}
	if employees[0].ID != 7 || employees[0].ShortName != "ACA" {
		t.Errorf("first employee = %+v, want id 7 short name ACA", employees[0])
	}
}

func TestLogin(t *testing.T) {
	t.Run("maps response to user", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			var creds Credentials
			json.NewDecoder(r.Body).Decode(&creds)
			if creds.Username != "maria" {
				t.Errorf("username = %q, want maria", creds.Username)
			}
			json.NewEncoder(w).Encode(LoginResponse{
				Message:      "Login successful",
				EmployeeID:   7,
				EmployeeName: "Maria Lopez",
			})
		})
		defer srv.Close()

		user, err := c.Login(context.Background(), Credentials{Username: "maria", Password: "pw"})
		if err != nil {
			t.Fatalf("Login() returned unexpected error: %v", err)
		}
		if user.ID != 7 || user.Name != "Maria Lopez" {
			t.Errorf("user = %+v, want id 7 / Maria Lopez", user)
		}
	})

	t.Run("empty credentials rejected client-side", func(t *testing.T) {
		called := false
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})
		defer srv.Close()

		if _, err := c.Login(context.Background(), Credentials{}); err == nil {
			t.Error("Login() with empty credentials returned nil error")
		}
		if called {
			t.Error("request was sent despite failing validation")
		}
	})
}
