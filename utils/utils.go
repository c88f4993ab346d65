package utils

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/fatih/structs"
)

// CalculateDifference gets the percentage difference between 2 numbers
func CalculateDifference(x float64, y float64) float64 {
	if y == 0 {
		y = 1
	}
	return (x - y) / y
}

// Clip bounds x to [min, max].
func Clip(x float64, min float64, max float64) float64 {
	return math.Max(min, math.Min(x, max))
}

// ConstrainFloat bounds x to [min, max] and rounds to a number of decimals.
func ConstrainFloat(x float64, min float64, max float64, decimals int) float64 {
	return ToFixed(Clip(x, min, max), decimals)
}

func SumArr(arr []float64) float64 {
	var sum float64
	for _, v := range arr {
		sum += v
	}
	return sum
}

func round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func ToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(round(num*output)) / output
}

// CreateKeyValuePairs renders a map as an indented key: value block for
// result logging. Struct values recurse through structs.Map.
func CreateKeyValuePairs(m map[string]interface{}, ignoreLowerCase bool, oldBytes ...*bytes.Buffer) string {
	var b *bytes.Buffer
	if len(oldBytes) > 0 {
		b = oldBytes[0]
	} else {
		b = new(bytes.Buffer)
	}
	fmt.Fprint(b, "\n{\n")
	for key, value := range m {
		firstLetter := string(key[0])
		upperCaseFirstLetter := strings.ToUpper(firstLetter)
		if !ignoreLowerCase || upperCaseFirstLetter == firstLetter {
			rv := reflect.ValueOf(value)
			if rv.Kind() == reflect.Struct {
				fmt.Fprint(b, " ", key, ": ")
				CreateKeyValuePairs(structs.Map(value), ignoreLowerCase, b)
			} else {
				fmt.Fprint(b, " ", key, ": ", value, ",\n")
			}
		}
	}
	fmt.Fprint(b, "}\n")
	return b.String()
}
