// Package catalog holds the fixed, ordered list of projects shown on the
// projects page. The list is a literal: editing it means editing this file.
package catalog

import "misakif.uk/internal/models"

// projectsData is never handed out directly; see Projects.
var projectsData = []models.Project{
	{
		Title:       "Synthesizer Flow",
		Description: `SynthesizerFlow 是一个基于流程图交互的模块化音频合成器。简单来说，它让你像搭积木一样组合各类音频模块，而不再需要复杂的代码或繁琐的参数配置。`,
		ImgSrc:      models.Ptr("/static/images/SynthesizerFlow/QQ20250406-162010.png"),
		Href:        models.Ptr("https://synthesizer-flow.misakif.uk"),
	},
	{
		Title: "The Time Machine",
		Description: `Imagine being able to travel back in time or to the future. Simple turn the knob
    to the desired date and press "Go". No more worrying about lost keys or
    forgotten headphones with this simple yet affordable solution.`,
		ImgSrc: models.Ptr("/static/images/time-machine.jpg"),
		Href:   models.Ptr("/blog/the-time-machine"),
	},
}

// Projects returns the catalog in display order. Each call returns a
// fresh deep copy.
func Projects() []models.Project {
	out := make([]models.Project, len(projectsData))
	for i, p := range projectsData {
		out[i] = p.Clone()
	}
	return out
}

// Len returns the number of projects in the catalog
func Len() int {
	return len(projectsData)
}
