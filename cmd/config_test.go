package cmd

import "testing"

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		book string
		want Config
	}{
		{
			name: "defaults",
			want: Config{BookFile: "book.jsonl"},
		},
		{
			name: "environment",
			env:  map[string]string{"SKS_BOOK_FILE": "mine.jsonl", "SKS_CURRENCY": "SAR", "SKS_VERBOSE": "true"},
			want: Config{BookFile: "mine.jsonl", Currency: "SAR", Verbose: true},
		},
		{
			name: "flag wins",
			env:  map[string]string{"SKS_BOOK_FILE": "mine.jsonl"},
			book: "other.jsonl",
			want: Config{BookFile: "other.jsonl"},
		},
		{
			name: "unreadable bool",
			env:  map[string]string{"SKS_VERBOSE": "maybe"},
			want: Config{BookFile: "book.jsonl"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, k := range []string{"SKS_BOOK_FILE", "SKS_CURRENCY", "SKS_VERBOSE"} {
				t.Setenv(k, tc.env[k])
			}
			old := *bookFlag
			*bookFlag = tc.book
			defer func() { *bookFlag = old }()

			if got := LoadConfig(); got != tc.want {
				t.Errorf("LoadConfig() = %+v, want %+v", got, tc.want)
			}
		})
	}
}
