package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"classopt/internal/optimizer"
)

// StudentRow is the gocsv struct-tag schema for the student roster CSV:
// one flat csv-tagged row per student.
type StudentRow struct {
	ID         string `csv:"id"`
	LastName   string `csv:"last_name"`
	FirstName  string `csv:"first_name"`
	Gender     string `csv:"gender"`
	COM        string `csv:"com"`
	TRA        string `csv:"tra"`
	PART       string `csv:"part"`
	ABS        string `csv:"abs"`
	LV2        string `csv:"lv2"`
	OPT        string `csv:"opt"`
	Affinity   string `csv:"affinity"`
	Antinomy   string `csv:"antinomy"`
	HasAntinomyAttr string `csv:"has_antinomy_attr"`
	Class      string `csv:"class"`
}

// ClassRow is the gocsv struct-tag schema for the destination-class quota
// table CSV. Elective quota columns beyond the fixed ones are not modeled
// here; FromCSV accepts a separately-loaded quota map instead.
type ClassRow struct {
	Name   string `csv:"name"`
	Target string `csv:"target"`
}

// FromCSV builds a Snapshot from a student roster reader and a class roster
// reader, both in the gocsv struct-tag formats above. quotas supplies the
// per-class LV2/OPT quota table, since a plain CSV row has no natural place
// for an open-ended code->quantity map.
func FromCSV(studentsR, classesR io.Reader, quotas map[string]optimizer.ClassQuota) (*optimizer.Snapshot, error) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = ','
		return r
	})

	var classRows []*ClassRow
	if err := gocsv.Unmarshal(classesR, &classRows); err != nil {
		return nil, fmt.Errorf("ingest: parsing classes csv: %w", err)
	}

	quotaList := make([]optimizer.ClassQuota, 0, len(classRows))
	for _, cr := range classRows {
		target, err := strconv.Atoi(strings.TrimSpace(cr.Target))
		if err != nil {
			return nil, fmt.Errorf("ingest: class %s: target %q: %w", cr.Name, cr.Target, err)
		}
		q, ok := quotas[cr.Name]
		if !ok {
			q = optimizer.ClassQuota{ClassName: cr.Name}
		}
		q.ClassName = cr.Name
		q.Target = target
		quotaList = append(quotaList, q)
	}
	offerings := optimizer.BuildOfferings(quotaList)

	var studentRows []*StudentRow
	if err := gocsv.Unmarshal(studentsR, &studentRows); err != nil {
		return nil, fmt.Errorf("ingest: parsing students csv: %w", err)
	}

	students := make(map[string]*optimizer.Student, len(studentRows))
	for _, row := range studentRows {
		com, err := parseScore(row.COM)
		if err != nil {
			return nil, fmt.Errorf("ingest: student %s: com: %w", row.ID, err)
		}
		tra, err := parseScore(row.TRA)
		if err != nil {
			return nil, fmt.Errorf("ingest: student %s: tra: %w", row.ID, err)
		}
		part, err := parseScore(row.PART)
		if err != nil {
			return nil, fmt.Errorf("ingest: student %s: part: %w", row.ID, err)
		}
		abs, err := parseScore(row.ABS)
		if err != nil {
			return nil, fmt.Errorf("ingest: student %s: abs: %w", row.ID, err)
		}

		st := optimizer.NewStudent(
			row.ID, row.LastName, row.FirstName,
			parseGender(row.Gender),
			com, tra, part, abs,
			row.LV2, row.OPT, row.Affinity, row.Antinomy,
			row.HasAntinomyAttr == "true" || row.HasAntinomyAttr == "1",
			optimizer.Movable,
		)
		students[row.ID] = &st
	}

	mobility := optimizer.ComputeMobility(students, &offerings)
	for id, m := range mobility {
		students[id].Mobility = m
	}

	classes := make([]*optimizer.Class, 0, len(quotaList))
	byName := make(map[string]*optimizer.Class, len(quotaList))
	for _, q := range quotaList {
		c := &optimizer.Class{Name: q.ClassName, Offering: *offerings.ByClass[q.ClassName]}
		classes = append(classes, c)
		byName[q.ClassName] = c
	}
	for _, row := range studentRows {
		if c := byName[row.Class]; c != nil {
			c.Members = append(c.Members, row.ID)
		}
	}

	return &optimizer.Snapshot{Students: students, Classes: classes, Offerings: offerings}, nil
}

// parseScore parses a roster cell into a score; blank means missing and
// returns the -1 sentinel NewStudent maps to the 2.5 fallback.
func parseScore(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1, nil
	}
	return strconv.ParseFloat(s, 64)
}

// LoadCSVFile is a convenience wrapper around FromCSV that opens both
// roster files by path.
func LoadCSVFile(studentsPath, classesPath string, quotas map[string]optimizer.ClassQuota) (*optimizer.Snapshot, error) {
	sf, err := os.Open(studentsPath)
	if err != nil {
		return nil, fmt.Errorf("ingest: opening %s: %w", studentsPath, err)
	}
	defer sf.Close()

	cf, err := os.Open(classesPath)
	if err != nil {
		return nil, fmt.Errorf("ingest: opening %s: %w", classesPath, err)
	}
	defer cf.Close()

	return FromCSV(sf, cf, quotas)
}
