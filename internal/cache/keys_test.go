package cache

import "testing"

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "quiz",
			objectType:  "questions",
			identifier:  "42",
			paramsKey:   nil,
			expectedKey: "quizlab:quiz:questions:42",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "quiz",
			objectType:  "count",
			identifier:  "42",
			paramsKey:   []string{},
			expectedKey: "quizlab:quiz:count:42",
		},
		{
			name:        "with one paramsKey",
			serviceName: "quiz",
			objectType:  "list",
			identifier:  "all",
			paramsKey:   []string{"recent"},
			expectedKey: "quizlab:quiz:list:all:recent",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "quiz",
			objectType:  "list",
			identifier:  "all",
			paramsKey:   []string{"recent", "page1"},
			expectedKey: "quizlab:quiz:list:all:recent_page1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...)
			if got != tt.expectedKey {
				t.Errorf("GenerateCacheKey() = %q, want %q", got, tt.expectedKey)
			}
		})
	}
}
