package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"maestro/internal/types"

	logger "github.com/Bparsons0904/goLogger"
)

// InferenceService parses classical-work attribution out of free-form track
// titles. It is a heuristic, rule-based stand-in for any parser meeting the
// same contract; it holds no state and never touches the store.
type InferenceService struct {
	log logger.Logger
}

var (
	catalogPattern = regexp.MustCompile(
		`\b(Op|Opus|BWV|KV|K|D|Hob|RV|Wq|WoO|Sz|TH|HWV|L|S)\.?\s*((?:[IVXLC]+[:.])?\s*\d+[a-z]?(?:\s*No\.?\s*\d+)?)`,
	)
	keyPattern = regexp.MustCompile(
		`(?i)\bin\s+([A-G](?:[\s-](?:sharp|flat))?(?:\s+(?:major|minor))?)\b`,
	)
	yearPattern          = regexp.MustCompile(`\((1[0-9]{3}|20[0-9]{2})\)`)
	nicknamePattern      = regexp.MustCompile(`[“"']([^”"']{2,60})[”"']`)
	parenNicknamePattern = regexp.MustCompile(`\(([^)]{2,60})\)`)
	romanPattern         = regexp.MustCompile(`^([IVXLC]+)\s*[.:]\s*(.*)$`)
	arabicPattern        = regexp.MustCompile(`^(?:No\.?\s*)?(\d{1,2})\s*[.:]\s*(.*)$`)
)

var formWords = []string{
	"symphony", "concerto", "sonata", "quartet", "quintet", "trio",
	"prelude", "fugue", "nocturne", "etude", "ballade", "scherzo",
	"overture", "suite", "mass", "requiem", "oratorio", "cantata",
	"rhapsody", "variations", "serenade", "impromptu", "mazurka",
	"polonaise", "waltz", "fantasy", "fantasia", "toccata",
}

// A short canon of composers used to pick attribution out of artist lists.
// Matching is by surname so "Ludwig van Beethoven" and "Beethoven" both hit.
var knownComposerSurnames = map[string]bool{
	"bach": true, "beethoven": true, "mozart": true, "haydn": true,
	"schubert": true, "brahms": true, "chopin": true, "liszt": true,
	"tchaikovsky": true, "dvorak": true, "dvořák": true, "mahler": true,
	"bruckner": true, "wagner": true, "verdi": true, "puccini": true,
	"handel": true, "händel": true, "vivaldi": true, "telemann": true,
	"mendelssohn": true, "schumann": true, "grieg": true, "sibelius": true,
	"debussy": true, "ravel": true, "satie": true, "stravinsky": true,
	"prokofiev": true, "shostakovich": true, "rachmaninoff": true,
	"rachmaninov": true, "scriabin": true, "elgar": true, "holst": true,
	"saint-saens": true, "saint-saëns": true, "faure": true, "fauré": true,
	"bartok": true, "bartók": true, "janacek": true, "janáček": true,
}

func NewInferenceService() *InferenceService {
	return &InferenceService{
		log: logger.New("InferenceService"),
	}
}

// InferBatch parses each entry independently. The result is order-preserving
// with exactly one element per input; nil marks an entry nothing could be
// extracted from.
func (s *InferenceService) InferBatch(entries []types.InferenceEntry) []*types.ParsedMetadata {
	log := s.log.Function("InferBatch")

	results := make([]*types.ParsedMetadata, len(entries))
	parsed := 0
	for i, entry := range entries {
		results[i] = s.parseEntry(entry)
		if results[i] != nil {
			parsed++
		}
	}

	log.Info("Inference batch completed", "entries", len(entries), "parsed", parsed)
	return results
}

func (s *InferenceService) parseEntry(entry types.InferenceEntry) *types.ParsedMetadata {
	title := strings.TrimSpace(entry.TrackName)
	if title == "" {
		return nil
	}

	meta := &types.ParsedMetadata{}

	// "Beethoven: Symphony No. 5 ..." style composer prefix comes off first;
	// otherwise a title with no movement segment would have its only colon
	// misread as the movement separator.
	workPart := title
	if composer, rest, ok := splitComposerPrefix(workPart); ok {
		meta.ComposerName = composer
		workPart = rest
	}

	workPart, movementPart := splitWorkAndMovement(workPart)

	if m := catalogPattern.FindStringSubmatch(workPart); m != nil {
		meta.CatalogSystem = normalizeCatalogSystem(m[1])
		meta.CatalogNumber = normalizeCatalogNumber(m[2])
	}

	if m := keyPattern.FindStringSubmatch(workPart); m != nil {
		meta.Key = m[1]
	}

	if m := yearPattern.FindStringSubmatch(workPart); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			meta.YearComposed = &year
		}
	}

	if m := nicknamePattern.FindStringSubmatch(title); m != nil {
		meta.Nickname = strings.TrimSpace(m[1])
	} else if m := parenNicknamePattern.FindStringSubmatch(workPart); m != nil {
		// Parenthesised nicknames like "(Pastoral)"; anything with a digit is a
		// year or catalog fragment, not a nickname.
		if candidate := strings.TrimSpace(m[1]); !strings.ContainsAny(candidate, "0123456789") {
			meta.Nickname = candidate
		}
	}

	lowerWork := strings.ToLower(workPart)
	for _, form := range formWords {
		if strings.Contains(lowerWork, form) {
			meta.Form = form
			break
		}
	}

	if movementPart != "" {
		number, movementTitle := parseMovement(movementPart)
		meta.MovementNumber = number
		meta.MovementTitle = movementTitle
	}

	meta.WorkTitle = cleanWorkTitle(workPart)

	if meta.ComposerName == "" {
		meta.ComposerName = composerFromArtists(entry.ArtistNames)
	}

	if isEmpty(meta) {
		return nil
	}
	return meta
}

// splitWorkAndMovement cuts a title at the last colon that is not part of a
// catalog reference like "Hob. XVI:52".
func splitWorkAndMovement(title string) (string, string) {
	for i := len(title) - 1; i >= 0; i-- {
		if title[i] != ':' || isCatalogColon(title, i) {
			continue
		}
		return strings.TrimSpace(title[:i]), strings.TrimSpace(title[i+1:])
	}
	return title, ""
}

// Colons inside a catalog number have a numeral directly on both sides with no
// space, e.g. "XVI:52".
func isCatalogColon(title string, i int) bool {
	isNumeralByte := func(b byte) bool {
		return (b >= '0' && b <= '9') || strings.IndexByte("IVXLC", b) >= 0
	}
	return i > 0 && i < len(title)-1 && isNumeralByte(title[i-1]) && isNumeralByte(title[i+1])
}

// splitComposerPrefix peels a leading "Composer:" segment off the title. The
// prefix must be short and digit-free, which keeps work titles and catalog
// references from qualifying.
func splitComposerPrefix(title string) (composer, rest string, ok bool) {
	idx := -1
	for i := range len(title) {
		if title[i] == ':' && !isCatalogColon(title, i) {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return "", title, false
	}

	prefix := strings.TrimSpace(title[:idx])
	if prefix == "" || strings.ContainsAny(prefix, "0123456789") {
		return "", title, false
	}
	if len(strings.Fields(prefix)) > 4 {
		return "", title, false
	}

	return prefix, strings.TrimSpace(title[idx+1:]), true
}

func parseMovement(segment string) (*int, string) {
	if m := romanPattern.FindStringSubmatch(segment); m != nil {
		if number, ok := romanToInt(m[1]); ok {
			return &number, strings.TrimSpace(m[2])
		}
	}

	if m := arabicPattern.FindStringSubmatch(segment); m != nil {
		if number, err := strconv.Atoi(m[1]); err == nil {
			return &number, strings.TrimSpace(m[2])
		}
	}

	return nil, strings.TrimSpace(segment)
}

func romanToInt(s string) (int, bool) {
	values := map[byte]int{'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100}
	total := 0
	for i := 0; i < len(s); i++ {
		value, ok := values[s[i]]
		if !ok {
			return 0, false
		}
		if i+1 < len(s) && values[s[i+1]] > value {
			total -= value
		} else {
			total += value
		}
	}
	if total == 0 {
		return 0, false
	}
	return total, true
}

func normalizeCatalogSystem(system string) string {
	if strings.EqualFold(system, "Opus") {
		return "Op"
	}
	if strings.EqualFold(system, "KV") {
		return "K"
	}
	return system
}

func normalizeCatalogNumber(number string) string {
	number = strings.TrimSpace(number)
	number = strings.ReplaceAll(number, " ", "")
	number = strings.ReplaceAll(number, "No.", "/")
	number = strings.ReplaceAll(number, "No", "/")
	return number
}

func cleanWorkTitle(workPart string) string {
	title := workPart
	if idx := catalogPattern.FindStringIndex(title); idx != nil {
		title = title[:idx[0]] + title[idx[1]:]
	}
	title = nicknamePattern.ReplaceAllString(title, "")
	title = yearPattern.ReplaceAllString(title, "")
	title = parenNicknamePattern.ReplaceAllStringFunc(title, func(match string) string {
		if strings.ContainsAny(match, "0123456789") {
			return match
		}
		return ""
	})
	title = strings.Trim(strings.TrimSpace(title), ",-: ")
	return strings.TrimSpace(title)
}

func composerFromArtists(artistNames []string) string {
	for _, name := range artistNames {
		fields := strings.Fields(strings.ToLower(name))
		if len(fields) == 0 {
			continue
		}
		if knownComposerSurnames[fields[len(fields)-1]] {
			return name
		}
	}
	return ""
}

func isEmpty(meta *types.ParsedMetadata) bool {
	return meta.ComposerName == "" &&
		meta.CatalogSystem == "" &&
		meta.CatalogNumber == "" &&
		meta.WorkTitle == "" &&
		meta.MovementNumber == nil &&
		meta.MovementTitle == ""
}

// MovementGroupEntry is one loaded track's contribution to movement-number
// inference. ComposerKey can come from fresh parse output or an existing store
// link; entries with incomplete keys never group.
type MovementGroupEntry struct {
	TrackID       string `json:"trackId"`
	AlbumID       string `json:"albumId"`
	DiscNumber    int    `json:"discNumber"`
	TrackNumber   int    `json:"trackNumber"`
	ComposerKey   string `json:"composerKey"`
	CatalogSystem string `json:"catalogSystem"`
	CatalogNumber string `json:"catalogNumber"`
}

// InferMovementNumbers groups entries by (album, composer, catalog system,
// catalog number), sorts each group by album position ascending and assigns the
// 1-based rank as the inferred movement number. A single-member group infers 1.
// Pure function over current in-memory state; results must not be cached.
func InferMovementNumbers(entries []MovementGroupEntry) map[string]int {
	type groupKey struct {
		albumID       string
		composerKey   string
		catalogSystem string
		catalogNumber string
	}

	groups := make(map[groupKey][]MovementGroupEntry)
	for _, entry := range entries {
		if entry.AlbumID == "" || entry.ComposerKey == "" ||
			entry.CatalogSystem == "" || entry.CatalogNumber == "" {
			continue
		}
		key := groupKey{
			albumID:       entry.AlbumID,
			composerKey:   strings.ToLower(entry.ComposerKey),
			catalogSystem: strings.ToLower(entry.CatalogSystem),
			catalogNumber: strings.ToLower(entry.CatalogNumber),
		}
		groups[key] = append(groups[key], entry)
	}

	inferred := make(map[string]int)
	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			if group[i].DiscNumber != group[j].DiscNumber {
				return group[i].DiscNumber < group[j].DiscNumber
			}
			return group[i].TrackNumber < group[j].TrackNumber
		})
		for rank, entry := range group {
			inferred[entry.TrackID] = rank + 1
		}
	}

	return inferred
}
