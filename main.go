package main

import ntrition "github.com/nitheesb/personal-calorie-tracker/cmd/ntrition"

func main() {
	ntrition.Execute()
}
