package tracker

// defaultSteps is the built-in checklist. Callers get copies via DefaultSteps.
var defaultSteps = State{
	{
		ID:       "s1",
		Title:    "Step 1 – Develop Recipes",
		Deadline: "Oct 2025",
		Tasks: []Task{
			{ID: "s1t1", Label: "Research flavor trends & competitors"},
			{ID: "s1t2", Label: "Source WI/Midwest ingredients"},
			{ID: "s1t3", Label: "Test small-batch recipes"},
			{ID: "s1t4", Label: "Check pH and food safety guidelines"},
			{ID: "s1t5", Label: "Record exact methods for consistency"},
			{ID: "s1t6", Label: "Conduct taste feedback round"},
		},
	},
	{
		ID:       "s2",
		Title:    "Step 2 – Finalize Branding & Design",
		Deadline: "Nov 2025",
		Tasks: []Task{
			{ID: "s2t1", Label: "Choose business name & check trademark"},
			{ID: "s2t2", Label: "Design logo & color palette"},
			{ID: "s2t3", Label: "Create WI-compliant label designs"},
			{ID: "s2t4", Label: "Decide bottle size, cap style, and packaging"},
			{ID: "s2t5", Label: "Order initial label & packaging samples"},
		},
	},
	{
		ID:       "s3",
		Title:    "Step 3 – Secure Licensed Kitchen",
		Deadline: "Dec 2025",
		Tasks: []Task{
			{ID: "s3t1", Label: "Research local commercial kitchens"},
			{ID: "s3t2", Label: "Confirm DATCP food processing license coverage"},
			{ID: "s3t3", Label: "Schedule production days"},
		},
	},
	{
		ID:       "s4",
		Title:    "Step 4 – Form LLC & Get Licensing",
		Deadline: "Feb 2026",
		Tasks: []Task{
			{ID: "s4t1", Label: "File LLC with WI DFI"},
			{ID: "s4t2", Label: "Get EIN from IRS"},
			{ID: "s4t3", Label: "Apply for WI Food Processing Plant License (DATCP)"},
			{ID: "s4t4", Label: "Take required food safety/processing training"},
			{ID: "s4t5", Label: "Apply for Transient Merchant/Direct Seller License"},
			{ID: "s4t6", Label: "Get product liability insurance"},
		},
	},
	{
		ID:       "s5",
		Title:    "Step 5 – Secure Booth at Public Markets",
		Deadline: "Mar 15 2026",
		Tasks: []Task{
			{ID: "s5t1", Label: "Research markets & vendor rules"},
			{ID: "s5t2", Label: "Prepare vendor applications"},
			{ID: "s5t3", Label: "Submit with proof of licensing & insurance"},
			{ID: "s5t4", Label: "Design booth layout"},
			{ID: "s5t5", Label: "Order marketing materials"},
		},
	},
	{
		ID:       "s6",
		Title:    "Step 6 – Sell Hot Sauce",
		Deadline: "May 2026",
		Tasks: []Task{
			{ID: "s6t1", Label: "Produce first market-ready batch in licensed kitchen"},
			{ID: "s6t2", Label: "Label bottles (WI-compliant)"},
			{ID: "s6t3", Label: "Transport & store products safely"},
			{ID: "s6t4", Label: "Set up at market & follow health codes"},
			{ID: "s6t5", Label: "Track sales & collect feedback"},
		},
	},
}
