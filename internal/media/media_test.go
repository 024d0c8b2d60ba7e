package media

import "testing"

func TestResolve(t *testing.T) {
	r := Resolver{Base: "http://localhost:5000/"}
	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "", "PH"},
		{"blank", "   ", "PH"},
		{"bare name", "a.png", "http://localhost:5000/uploads/a.png"},
		{"stored path", "uploads/a.png", "http://localhost:5000/uploads/a.png"},
		{"windows path", `uploads\img\a.png`, "http://localhost:5000/uploads/a.png"},
		{"leading slash", "/uploads/a.png", "http://localhost:5000/uploads/a.png"},
		{"already resolved", "http://localhost:5000/uploads/a.png", "http://localhost:5000/uploads/a.png"},
		{"https", "https://cdn.example.com/x.jpg", "https://cdn.example.com/x.jpg"},
		{"data url", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"blob url", "blob:http://localhost:8000/123", "blob:http://localhost:8000/123"},
		{"trailing separator", "uploads/", "PH"},
		{"space in name", "my pic.png", "http://localhost:5000/uploads/my%20pic.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(tt.path, "PH"); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	r := Resolver{Base: "http://localhost:5000"}
	for _, p := range []string{"a.png", "uploads/b.jpg", `x\y\c.gif`} {
		once := r.Cover(p)
		if twice := r.Cover(once); twice != once {
			t.Errorf("Cover(Cover(%q)) = %q, want %q", p, twice, once)
		}
	}
}

func TestPlaceholders(t *testing.T) {
	r := Resolver{Base: "http://h"}
	if r.Avatar("") != AvatarPlaceholder || r.Cover("") != CoverPlaceholder || r.Detail("") != DetailPlaceholder {
		t.Error("wrong placeholder")
	}
	if got := r.NavAvatar("", "Hamed Ali"); got != "https://ui-avatars.com/api/?name=Hamed+Ali" {
		t.Errorf("NavAvatar = %q", got)
	}
	if got := r.NavAvatar("", ""); got != "https://ui-avatars.com/api/?name=User" {
		t.Errorf("NavAvatar empty = %q", got)
	}
	if got := r.NavAvatar("a.png", "A"); got != "http://h/uploads/a.png" {
		t.Errorf("NavAvatar stored = %q", got)
	}
}
