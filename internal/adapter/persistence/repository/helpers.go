package repository

import (
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func idKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

// setExpression builds "SET #f0 = :v0, ..." over every attribute of av except
// the skipped ones. Keys are sorted so the expression is stable.
func setExpression(av map[string]types.AttributeValue, skip ...string) (string, map[string]string, map[string]types.AttributeValue) {
	skipped := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipped[s] = true
	}
	keys := make([]string, 0, len(av))
	for k := range av {
		if !skipped[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	names := make(map[string]string, len(keys)+1)
	values := make(map[string]types.AttributeValue, len(keys))
	expr := "SET "
	for i, k := range keys {
		n, v := "#f"+strconv.Itoa(i), ":v"+strconv.Itoa(i)
		if i > 0 {
			expr += ", "
		}
		expr += n + " = " + v
		names[n] = k
		values[v] = av[k]
	}
	return expr, names, values
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
