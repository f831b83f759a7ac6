package goals

import (
	"math"
	"testing"
)

func TestWaterGoal(t *testing.T) {
	cases := []struct {
		name   string
		weight float64
		want   int
	}{
		{"70kg", 70, 2450},
		{"80kg", 80, 2800},
		{"rounds half up", 70.3, 2461}, // 70.3*35 = 2460.5
		{"zero weight falls back to default", 0, DefaultWaterGoal},
		{"negative weight falls back to default", -5, DefaultWaterGoal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WaterGoal(tc.weight); got != tc.want {
				t.Errorf("WaterGoal(%v) = %d, want %d", tc.weight, got, tc.want)
			}
		})
	}
}

func TestBMI(t *testing.T) {
	cases := []struct {
		name           string
		height, weight float64
		want           float64
		ok             bool
	}{
		{"175cm 70kg", 175, 70, 22.9, true},
		{"160cm 50kg", 160, 50, 19.5, true},
		{"missing height", 0, 70, 0, false},
		{"missing weight", 175, 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := BMI(tc.height, tc.weight)
			if ok != tc.ok {
				t.Fatalf("BMI(%v, %v) ok = %v, want %v", tc.height, tc.weight, ok, tc.ok)
			}
			if got != tc.want {
				t.Errorf("BMI(%v, %v) = %v, want %v", tc.height, tc.weight, got, tc.want)
			}
		})
	}
}

func TestBMICategory(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{17.0, "underweight"},
		{18.5, "normal"},
		{22.9, "normal"},
		{25.0, "overweight"},
		{29.9, "overweight"},
		{30.0, "obese"},
	}

	for _, tc := range cases {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestIdealWeight(t *testing.T) {
	cases := []struct {
		name   string
		height float64
		gender string
		want   float64
		ok     bool
	}{
		// 180cm = 70.87in, male: 50 + 2.3*10.87 = 75.0
		{"male 180cm", 180, "male", 75.0, true},
		{"female 180cm", 180, "female", 70.5, true},
		{"other 180cm", 180, "other", 72.7, true},
		{"unspecified gender uses other base", 180, "", 72.7, true},
		{"missing height", 0, "male", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := IdealWeight(tc.height, tc.gender)
			if ok != tc.ok {
				t.Fatalf("IdealWeight(%v, %q) ok = %v, want %v", tc.height, tc.gender, ok, tc.ok)
			}
			if got != tc.want {
				t.Errorf("IdealWeight(%v, %q) = %v, want %v", tc.height, tc.gender, got, tc.want)
			}
		})
	}
}

func TestWeightProgress(t *testing.T) {
	cases := []struct {
		name           string
		current, ideal float64
		want           float64
	}{
		{"at ideal weight", 75, 75, 100},
		{"15kg away is halfway", 90, 75, 50},
		{"30kg away is zero", 105, 75, 0},
		{"beyond 30kg clamps to zero", 120, 75, 0},
		{"missing current", 0, 75, 0},
		{"missing ideal", 75, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WeightProgress(tc.current, tc.ideal)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("WeightProgress(%v, %v) = %v, want %v", tc.current, tc.ideal, got, tc.want)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	cases := []struct {
		name        string
		value, goal int
		want        float64
	}{
		{"partial", 300, 2000, 15},
		{"exact", 2000, 2000, 100},
		{"over goal caps at 100", 2500, 2000, 100},
		{"zero goal yields zero", 500, 0, 0},
		{"negative goal yields zero", 500, -1, 0},
		{"negative net value goes below zero", -300, 2000, -15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Progress(tc.value, tc.goal)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Progress(%d, %d) = %v, want %v", tc.value, tc.goal, got, tc.want)
			}
		})
	}
}

func TestNetCalories(t *testing.T) {
	if got := NetCalories(500, 200); got != 300 {
		t.Errorf("NetCalories(500, 200) = %d, want 300", got)
	}
	if got := NetCalories(0, 300); got != -300 {
		t.Errorf("NetCalories(0, 300) = %d, want -300", got)
	}
}
