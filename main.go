package main

import (
	"fmt"
	"log"

	"github.com/meenmo/bondval/bond"
)

func main() {
	terms := bond.Terms{
		FaceValue:      1000,
		CouponRate:     0.06,
		MaturityYears:  5,
		PeriodsPerYear: 2,
		YieldRate:      0.08,
	}

	v, err := bond.Value(terms)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Price: %.2f (%s)\n", v.Price, bond.Classify(terms, v.Price))
	fmt.Printf("Macaulay Duration: %.4f periods, %.4f years\n", v.MacaulayPeriods, v.MacaulayYears)
	fmt.Printf("Modified Duration: %.4f\n", v.ModifiedYears())
	fmt.Printf("DV01: %.4f\n", bond.DollarDuration(v))
}
