package services

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// LoadSeed adds every *.json post found under dir, in lexical path order.
// Invalid posts are skipped. It returns how many posts were added.
func LoadSeed(dir string, posts *Posts) (int, error) {
	var files []string

	err := godirwalk.Walk(dir, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if de.IsDir() || !strings.EqualFold(filepath.Ext(osPathname), ".json") {
				return nil
			}
			files = append(files, osPathname)
			return nil
		},
		Unsorted: true,
	})
	if err != nil {
		return 0, errors.Wrapf(err, "walk seed dir %s", dir)
	}

	sort.Strings(files)

	var added int
	for _, file := range files {
		b, err := os.ReadFile(file)
		if err != nil {
			return added, errors.Wrapf(err, "read seed file %s", file)
		}

		draft, err := DecodeDraft(b)
		if err == nil {
			_, err = posts.Add(draft)
		}
		if err != nil {
			log.Warn().Err(err).Str("file", file).Msg("skipping seed post")
			continue
		}
		added++
	}

	log.Info().Msgf("seeded %d posts from %s", added, dir)

	return added, nil
}
