// Package ingest builds an optimizer.Snapshot from external JSON or CSV
// sources, computing derived offerings and mobility the way the core
// expects them.
package ingest

import (
	"fmt"

	"github.com/tidwall/gjson"

	"classopt/internal/optimizer"
)

// FromJSON parses a cohort document and builds a Snapshot. The expected
// shape is:
//
//	{
//	  "students": [{"id","last_name","first_name","gender","com","tra","part","abs",
//	                "lv2","opt","affinity","antinomy","has_antinomy_attr","class"}],
//	  "classes": [{"name","target","lv2_quota":{"ESP":20},"opt_quota":{"LATIN":5}}]
//	}
func FromJSON(doc string) (*optimizer.Snapshot, error) {
	if !gjson.Valid(doc) {
		return nil, fmt.Errorf("ingest: invalid JSON document")
	}

	root := gjson.Parse(doc)

	var quotas []optimizer.ClassQuota
	root.Get("classes").ForEach(func(_, v gjson.Result) bool {
		quotas = append(quotas, optimizer.ClassQuota{
			ClassName: v.Get("name").String(),
			LV2Quota:  intMapOf(v.Get("lv2_quota")),
			OPTQuota:  intMapOf(v.Get("opt_quota")),
			Target:    int(v.Get("target").Int()),
		})
		return true
	})
	offerings := optimizer.BuildOfferings(quotas)

	students := make(map[string]*optimizer.Student)
	root.Get("students").ForEach(func(_, v gjson.Result) bool {
		id := v.Get("id").String()
		st := optimizer.NewStudent(
			id,
			v.Get("last_name").String(),
			v.Get("first_name").String(),
			parseGender(v.Get("gender").String()),
			numberOrMissing(v, "com"),
			numberOrMissing(v, "tra"),
			numberOrMissing(v, "part"),
			numberOrMissing(v, "abs"),
			v.Get("lv2").String(),
			v.Get("opt").String(),
			v.Get("affinity").String(),
			v.Get("antinomy").String(),
			v.Get("has_antinomy_attr").Bool(),
			optimizer.Movable,
		)
		students[id] = &st
		return true
	})

	mobility := optimizer.ComputeMobility(students, &offerings)
	for id, m := range mobility {
		students[id].Mobility = m
	}

	classes := make([]*optimizer.Class, 0, len(quotas))
	byClassName := make(map[string]*optimizer.Class, len(quotas))
	for _, q := range quotas {
		c := &optimizer.Class{Name: q.ClassName, Offering: *offerings.ByClass[q.ClassName]}
		classes = append(classes, c)
		byClassName[q.ClassName] = c
	}

	root.Get("students").ForEach(func(_, v gjson.Result) bool {
		className := v.Get("class").String()
		id := v.Get("id").String()
		if c := byClassName[className]; c != nil {
			c.Members = append(c.Members, id)
		}
		return true
	})

	return &optimizer.Snapshot{Students: students, Classes: classes, Offerings: offerings}, nil
}

func intMapOf(v gjson.Result) map[string]int {
	out := make(map[string]int)
	v.ForEach(func(k, val gjson.Result) bool {
		out[k.String()] = int(val.Int())
		return true
	})
	return out
}

func parseGender(s string) optimizer.Gender {
	switch s {
	case "F", "f":
		return optimizer.GenderF
	case "M", "m":
		return optimizer.GenderM
	default:
		return optimizer.GenderUnknown
	}
}

// numberOrMissing returns -1 (the clamp-to-default sentinel) when the field
// is absent, so NewStudent's fallback-to-2.5 behavior applies uniformly.
func numberOrMissing(v gjson.Result, field string) float64 {
	r := v.Get(field)
	if !r.Exists() {
		return -1
	}
	return r.Float()
}
