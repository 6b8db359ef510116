package schema

import "careercompass/internal/model"

// Default returns the full questionnaire: the career/profile sections
// followed by the personality-type and Big-Five sections the scorers read.
func Default() model.Schema {
	s := model.Schema{
		{
			ID:    "SEC1",
			Title: "Basic Information",
			Questions: []model.Question{
				{ID: "S1QID1", Prompt: "What is your name?", Kind: model.InputText},
				{ID: "S1QID2", Prompt: "What is your gender?", Kind: model.InputSingleChoice, Options: []string{"Male", "Female", "Other"}},
				{ID: "S1QID3", Prompt: "What is your address?", Kind: model.InputText},
				{ID: "S1QID4", Prompt: "What is your pincode?", Kind: model.InputText},
				{ID: "S1QID5", Prompt: "What is your mobile number?", Kind: model.InputText},
				{ID: "S1QID6", Prompt: "What is your email address?", Kind: model.InputText},
				{ID: "S1QID7", Prompt: "What defines you best?", Kind: model.InputSingleChoice, Options: []string{"Currently Studying", "Recently Graduated", "Working Professional"}},
			},
		},
		{
			ID:    "SEC2",
			Title: "Academic Information",
			Questions: []model.Question{
				{ID: "A1QID1", Prompt: "What was your high school stream?", Kind: model.InputDropdown, Options: []string{"Science with Biology", "Science without Biology", "Commerce", "Arts"}},
				{ID: "A1QID2", Prompt: "What was your high school percentage?", Kind: model.InputText},
				{ID: "A1QID6", Prompt: "Have you done any internships or part-time jobs?", Kind: model.InputSingleChoice, Options: []string{"Yes", "No"}},
			},
		},
		{
			ID:    "SEC2_1",
			Title: "Academic Records",
			Questions: []model.Question{
				{
					ID:     "A1QID3",
					Prompt: "Academic Records",
					Kind:   model.InputRepeatableGroup,
					Fields: []model.Question{
						{ID: "CollegeID", Prompt: "Current / Last College", Kind: model.InputText},
						{ID: "DegreeID", Prompt: "Degree", Kind: model.InputText},
						{ID: "FieldID", Prompt: "Field of Study", Kind: model.InputText},
						{ID: "YearID", Prompt: "Year of Completion", Kind: model.InputDate},
					},
				},
			},
		},
		{
			ID:    "SEC2_2",
			Title: "Extra Course Information",
			Questions: []model.Question{
				{
					ID:     "A1QID4",
					Prompt: "Extra Courses Done",
					Kind:   model.InputRepeatableGroup,
					Fields: []model.Question{
						{ID: "CourseID", Prompt: "Course Name", Kind: model.InputText},
					},
				},
			},
		},
		{
			ID:    "SEC2_2_1",
			Title: "Extracurricular Information",
			Questions: []model.Question{
				{
					ID:     "A1QID5",
					Prompt: "Extracurricular Done",
					Kind:   model.InputRepeatableGroup,
					Fields: []model.Question{
						{ID: "ActivityID", Prompt: "Activity Name", Kind: model.InputText},
					},
				},
			},
		},
		{
			ID:         "SEC_2_3",
			Title:      "Internship Information",
			Visibility: map[string]string{"A1QID6": "Yes"},
			Questions: []model.Question{
				{
					ID:     "I1Q1D1",
					Prompt: "Internship Details",
					Kind:   model.InputRepeatableGroup,
					Fields: []model.Question{
						{ID: "InternshipID", Prompt: "Internship Description", Kind: model.InputTextarea},
					},
				},
			},
		},
		{
			ID:         "SEC3",
			Title:      "Work Experience",
			Visibility: map[string]string{"S1QID7": "Working Professional"},
			Questions: []model.Question{
				{
					ID:     "W1QID1",
					Prompt: "Work Experience history",
					Kind:   model.InputRepeatableGroup,
					Fields: []model.Question{
						{ID: "JobID", Prompt: "Job Title", Kind: model.InputText},
						{ID: "CompanyID", Prompt: "Company Name", Kind: model.InputText},
						{ID: "LocationID", Prompt: "Job Location", Kind: model.InputText},
						{ID: "StartDateID", Prompt: "Start Date", Kind: model.InputDate},
						{ID: "EndDateID", Prompt: "End Date", Kind: model.InputDate},
						{ID: "ResponsibilitiesID", Prompt: "Key Responsibilities", Kind: model.InputTextarea},
					},
				},
			},
		},
		{
			ID:    "SEC4",
			Title: "Career Goals",
			Questions: []model.Question{
				{
					ID:     "CGQ1",
					Prompt: "Choose your desired job roles in Bio Careers",
					Kind:   model.InputMultiChoice,
					Options: []string{
						"Clinical Data Manager",
						"Biotech Research Associate",
						"Regulatory Affairs Specialist",
						"Bioinformatics Analyst",
						"Quality Assurance Officer",
					},
				},
			},
		},
		{
			ID:    "SEC5",
			Title: "Existing Skills",
			Questions: []model.Question{
				{
					ID:     "ESQ1",
					Prompt: "Choose your Skills",
					Kind:   model.InputMultiChoice,
					Options: []string{
						"Data Analysis",
						"Laboratory Techniques",
						"Scientific Writing",
						"Programming",
						"Project Management",
					},
				},
				{ID: "ESQ2", Prompt: "If any other skill exist?", Kind: model.InputText},
			},
		},
	}

	s = append(s, personalitySection(), bigFiveSection())
	return s
}
