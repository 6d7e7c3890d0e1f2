package utils

import "fmt"

var Cities = []string{
	"Milan",
	"Rome",
	"Turin",
	"Bologna",
	"Florence",
	"Naples",
	"Genoa",
	"Venice",
	"Verona",
	"Bari",
	"Padua",
}

var Degrees = []string{
	"Bachelor",
	"Master",
	"PhD",
}

var Majors = []string{
	"Computer Science",
	"Software Engineering",
	"Data Science",
	"Electronic Engineering",
	"Mathematics",
}

var InstitutionTypes = []string{
	"university",
	"vocational",
}

var Skills = []string{
	"python", "java", "javascript", "typescript", "sql", "react",
	"node.js", "docker", "kubernetes", "aws", "machine learning",
	"data analysis", "html", "css", "git", "linux",
}

// project categories
var Categories = []string{"web", "mobile", "data"}

// technologies used in generated project titles
var technologies = []string{"Python", "React", "Node.js", "Flutter", "Django", "Spring"}

// GenerateProjectTitles combines categories and technologies into
// plausible student project titles
func GenerateProjectTitles() []string {
	var combined []string
	for _, category := range Categories {
		for _, technology := range technologies {
			combined = append(combined, fmt.Sprintf("%s %s project", technology, category))
		}
	}
	return combined
}
