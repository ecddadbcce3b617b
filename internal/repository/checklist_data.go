package repository

import "github.com/cob-engineering/plan-review-api/internal/models"

// Reviewers lists the initials of staff who perform plan reviews.
var Reviewers = []string{"KB", "JD", "JM", "RL", "PM", "JC", "SKT", "DB"}

// Shared applies-to groups. A nil list means the item applies to every
// review type.
var (
	lotTypes = []models.ReviewType{
		models.ReviewTypeTransitional,
		models.ReviewTypeHillside,
		models.ReviewTypeStandard,
	}
	lotPoolTypes = []models.ReviewType{
		models.ReviewTypeTransitional,
		models.ReviewTypeHillside,
		models.ReviewTypeStandard,
		models.ReviewTypePool,
	}
	transitionalTypes = []models.ReviewType{
		models.ReviewTypeTransitional,
		models.ReviewTypeHillside,
	}
	stampedPlanTypes = []models.ReviewType{
		models.ReviewTypeTransitional,
		models.ReviewTypeHillside,
		models.ReviewTypePool,
	}
	poolOnly  = []models.ReviewType{models.ReviewTypePool}
	fenceOnly = []models.ReviewType{models.ReviewTypeFence}
	hpOnly    = []models.ReviewType{models.ReviewTypeHillside}
)

// checklistSections holds every checklist section in review order.
var checklistSections = []models.ChecklistSection{
	{
		ID:   "general_preliminary",
		Name: "0. General/Preliminary",
		Items: []models.ChecklistItem{
			{ID: "0.1", Description: "Plan complete enough for full review (Land Disturbance Plan requirements)", CommentIDs: []string{"BB-0011"}, AppliesTo: lotTypes},
			{ID: "0.2", Description: "Plan complete enough for full review (Transitional Lot requirements)", CommentIDs: []string{"BB-0013"}, AppliesTo: transitionalTypes},
			{ID: "0.3", Description: "Engineering review required (>800 sq ft additional impervious)", CommentIDs: []string{"BB-0018"}},
			{ID: "0.4", Description: "ROW/PUDE damage repair note provided", CommentIDs: []string{"BB-0024"}},
		},
	},
	{
		ID:   "plan_documentation",
		Name: "1. Plan Documentation",
		Items: []models.ChecklistItem{
			{ID: "1.1", Description: "Plans stamped and signed by TN PE or LA", CommentIDs: []string{"BB-0096"}, AppliesTo: stampedPlanTypes},
			{ID: "1.2", Description: "Name and phone number of builder/owner shown on plan", CommentIDs: []string{"BB-0103"}},
			{ID: "1.3", Description: "Email address for design engineer or LA shown/submitted", CommentIDs: []string{"BB-0104"}, AppliesTo: stampedPlanTypes},
			{ID: "1.4", Description: "Building footprint matches house plans", CommentIDs: []string{"BB-0105"}, AppliesTo: lotTypes},
			{ID: "1.5", Description: "Current field run topography with 2' contours and actual elevations based on benchmark", CommentIDs: []string{"BB-0083", "BB-0124"}, AppliesTo: lotPoolTypes},
			{ID: "1.6", Description: "Limit to one page if possible, two pages if necessary", CommentIDs: []string{"BB-0106"}, AppliesTo: transitionalTypes},
			{ID: "1.7", Description: "Scale 1:20 standard, other engineering scales as necessary", CommentIDs: []string{"BB-0107"}, AppliesTo: transitionalTypes},
			{ID: "1.8", Description: "Vicinity map with legible street names", CommentIDs: []string{"BB-0108"}, AppliesTo: lotTypes},
			{ID: "1.9", Description: "Subdivision, lot number, and zoning in title block and labeled in plan view", CommentIDs: []string{"BB-0109"}},
			{ID: "1.10", Description: "Adjacent lot numbers and parcel data if available", CommentIDs: []string{"BB-0059"}, AppliesTo: lotTypes},
			{ID: "1.11", Description: "Label streets and show right-of-way width", CommentIDs: []string{"BB-0110"}, AppliesTo: lotTypes},
			{ID: "1.12", Description: "Include recorded plat book and page number in title block", CommentIDs: []string{"BB-0111"}, AppliesTo: lotTypes},
			{ID: "1.13", Description: "Dumpster location shown with accessible route by transport", CommentIDs: []string{"BB-0060"}, AppliesTo: lotTypes},
			{ID: "1.14", Description: "Concrete washout location shown with accessible route", CommentIDs: []string{"BB-0069"}, AppliesTo: lotTypes},
		},
	},
	{
		ID:   "standard_details",
		Name: "2. Standard Details",
		Items: []models.ChecklistItem{
			{ID: "2.1", Description: "Silt fence detail (TDEC approved)", CommentIDs: []string{"BB-0062", "BB-0025"}, AppliesTo: lotPoolTypes},
			{ID: "2.2", Description: "Temporary construction entrance (12'W x 30'L, ASTM #1 stone, filter fabric)", CommentIDs: []string{"BB-0064", "BB-0132", "BB-0054"}, AppliesTo: lotPoolTypes},
			{ID: "2.3", Description: "Tree protection detail (1.5 times larger than drip line)", CommentIDs: []string{"BB-0040"}, AppliesTo: lotPoolTypes},
			{ID: "2.4", Description: "Retaining wall detail (if applicable) stamped by PE", CommentIDs: []string{"BB-0061", "BB-0036"}, AppliesTo: lotPoolTypes},
			{ID: "2.5", Description: "Driveway ramp detail", CommentIDs: []string{"BB-0092"}, AppliesTo: lotTypes},
			{ID: "2.6", Description: "Typical drainage swale detail", CommentIDs: []string{"BB-0042"}, AppliesTo: lotPoolTypes},
			{ID: "2.7", Description: "Underground drainage infrastructure detail", CommentIDs: []string{"BB-0130"}, AppliesTo: lotPoolTypes},
			{ID: "2.8", Description: "Sidewalk detail (if applicable)", CommentIDs: []string{"BB-0070"}, AppliesTo: lotTypes},
		},
	},
	{
		ID:   "property_boundaries",
		Name: "3. Property & Boundaries",
		Items: []models.ChecklistItem{
			{ID: "3.1", Description: "Property lines with bearings and distances (check against recorded plat)", CommentIDs: []string{"BB-0131", "BB-0001", "BB-0112"}},
			{ID: "3.2", Description: "Building setbacks shown, labeled and dimensioned", CommentIDs: []string{"BB-0125", "BB-0078", "BB-0063"}, AppliesTo: lotPoolTypes},
			{ID: "3.3", Description: "Easements shown, labeled and dimensioned", CommentIDs: []string{"BB-0113"}},
			{ID: "3.4", Description: "All public utilities shown, labeled and dimensioned", CommentIDs: []string{"BB-0114"}, AppliesTo: lotTypes},
		},
	},
	{
		ID:   "topography_grading",
		Name: "4. Topography & Grading",
		Items: []models.ChecklistItem{
			{ID: "4.1", Description: "Proposed contours labeled and distinguishable from existing", CommentIDs: []string{"BB-0051"}, AppliesTo: lotPoolTypes},
			{ID: "4.2", Description: "Spot elevations shown where necessary, TW/BW for retaining walls", CommentIDs: []string{"BB-0075"}, AppliesTo: lotPoolTypes},
			{ID: "4.3", Description: "Grades in excess of 3:1 labeled with method of stabilization noted", CommentIDs: []string{"BB-0055", "BB-0079"}, AppliesTo: lotPoolTypes},
			{ID: "4.4", Description: "Off-site topography extended 25' beyond boundaries if grading within 20' of boundary", CommentIDs: []string{"BB-0028", "BB-0046"}, AppliesTo: lotTypes},
		},
	},
	{
		ID:   "driveways",
		Name: "5. Driveways",
		Items: []models.ChecklistItem{
			{ID: "5.1", Description: "Driveway width labeled (Max 20', Min 10' unless >500' long then 12')", CommentIDs: []string{"BB-0115"}, AppliesTo: lotTypes},
			{ID: "5.2", Description: "Driveway slope (20% max hard surface, 10% gravel, 5% max cross slope)", CommentIDs: []string{"BB-0126"}, AppliesTo: lotTypes},
			{ID: "5.3", Description: "6\" rise in driveway from edge of pavement to R.O.W.", CommentIDs: []string{"BB-0116"}, AppliesTo: lotTypes},
			{ID: "5.4", Description: "Minimum 20' inside turning radius for curves, 14' overhead clearance", CommentIDs: []string{"BB-0117"}, AppliesTo: lotTypes},
			{ID: "5.5", Description: "Grade break from drive entrance passable for typical car", CommentIDs: []string{"BB-0118"}, AppliesTo: lotTypes},
			{ID: "5.6", Description: "30' driveway apron (or 24' with 10'x12' dovetail turnaround)", CommentIDs: []string{"BB-0057"}, AppliesTo: lotTypes},
			{ID: "5.7", Description: "Driveway 5' minimum from property line", CommentIDs: []string{"BB-0052"}, AppliesTo: lotTypes},
			{ID: "5.8", Description: "Driveway not impacting drainage inlet", CommentIDs: []string{"BB-0094"}, AppliesTo: lotTypes},
		},
	},
	{
		ID:   "retaining_walls",
		Name: "6. Retaining Walls",
		Items: []models.ChecklistItem{
			{ID: "6.1", Description: "Max height 10' inside buildable area, 6' outside (measured on exposed face)", CommentIDs: []string{"BB-0036"}, AppliesTo: lotPoolTypes},
			{ID: "6.2", Description: "Walls 4'+ require PE-stamped design (per code sec. 78-14)", CommentIDs: []string{"BB-0036", "BB-0041"}, AppliesTo: lotPoolTypes},
			{ID: "6.3", Description: "Retaining wall design detail shown on plan", CommentIDs: []string{"BB-0061"}, AppliesTo: lotPoolTypes},
			{ID: "6.4", Description: "Note that walls >4' must be inspected by licensed PE", CommentIDs: []string{"BB-0041"}, AppliesTo: lotPoolTypes},
			{ID: "6.5", Description: "Guard rails/fencing required for grade change >30\" (attached to house)", CommentIDs: []string{"BB-0036", "BB-0102"}, AppliesTo: lotPoolTypes},
			{ID: "6.6", Description: "Guard rails, fencing, or planted hedging for walls detached from house (>30\")", CommentIDs: []string{"BB-0036", "BB-0102"}, AppliesTo: lotPoolTypes},
		},
	},
	{
		ID:   "drainage",
		Name: "7. Drainage",
		Items: []models.ChecklistItem{
			{ID: "7.1", Description: "Drainage infrastructure designed by PE per Article 6.10 of Subdivision Regulations", CommentIDs: []string{"BB-0027", "BB-0080"}, AppliesTo: lotPoolTypes},
			{ID: "7.2", Description: "Hydrologic and hydraulic data shown (pipe length, dimensions, acreage, flow, capacity, slope, material)", CommentIDs: []string{"BB-0027", "BB-0067"}, AppliesTo: lotPoolTypes},
			{ID: "7.3", Description: "Drive culverts and pipe outlets require headwalls/endwalls and proper armament", CommentIDs: []string{"BB-0033", "BB-0073"}, AppliesTo: lotTypes},
			{ID: "7.4", Description: "Lot line swales designed and shown via contours or arrows", CommentIDs: []string{"BB-0042", "BB-0043"}, AppliesTo: lotPoolTypes},
			{ID: "7.5", Description: "Swale calculations for velocities and stabilization", CommentIDs: []string{"BB-0021", "BB-0089"}, AppliesTo: lotPoolTypes},
			{ID: "7.6", Description: "Check dams in areas of concentrated flow", CommentIDs: []string{"BB-0032", "BB-0038", "BB-0044"}, AppliesTo: lotPoolTypes},
			{ID: "7.7", Description: "Downspout locations and outlet protection labeled", CommentIDs: []string{"BB-0034", "BB-0037"}, AppliesTo: lotPoolTypes},
			{ID: "7.8", Description: "Positive drainage within right-of-way shown with contours/spot elevations", CommentIDs: []string{"BB-0082"}, AppliesTo: lotTypes},
		},
	},
	{
		ID:   "erosion_control",
		Name: "8. Erosion Control",
		Items: []models.ChecklistItem{
			{ID: "8.1", Description: "Erosion control shown on plan with legend and/or annotations", CommentIDs: []string{"BB-0072"}, AppliesTo: lotPoolTypes},
			{ID: "8.2", Description: "Silt fence properly designed per TDEC criteria", CommentIDs: []string{"BB-0025"}, AppliesTo: lotPoolTypes},
			{ID: "8.3", Description: "Construction entrance detail with ROW protection notes", CommentIDs: []string{"BB-0064", "BB-0054"}, AppliesTo: lotPoolTypes},
			{ID: "8.4", Description: "Limits of disturbance shown", CommentIDs: []string{"BB-0095"}, AppliesTo: lotPoolTypes},
			{ID: "8.5", Description: "Brentwood Critical Erosion Control Notes provided", CommentIDs: []string{"BB-0031"}, AppliesTo: lotPoolTypes},
		},
	},
	{
		ID:   "trees_landscaping",
		Name: "9. Trees & Landscaping",
		Items: []models.ChecklistItem{
			{ID: "9.1", Description: "Tree survey showing location, diameter, species of trees to remove/remain", CommentIDs: []string{"BB-0039", "BB-0065"}, AppliesTo: lotTypes},
			{ID: "9.2", Description: "Tree protection shown in plan view", CommentIDs: []string{"BB-0009"}, AppliesTo: lotPoolTypes},
			{ID: "9.3", Description: "Tree protection detail (1.5 times drip line)", CommentIDs: []string{"BB-0040"}, AppliesTo: lotPoolTypes},
			{ID: "9.4", Description: "Note: 25 caliper inches of trees per acre required", CommentIDs: []string{"BB-0121"}, AppliesTo: lotTypes},
		},
	},
	{
		ID:   "utilities",
		Name: "10. Utilities",
		Items: []models.ChecklistItem{
			{ID: "10.1", Description: "HVAC pad shown", CommentIDs: []string{"BB-0119"}, AppliesTo: lotTypes},
			{ID: "10.2", Description: "Water meter location shown", CommentIDs: []string{"BB-0120"}, AppliesTo: lotTypes},
			{ID: "10.3", Description: "Sewer stub-out shown (check FFE vs invert, grinder pump if applicable)", CommentIDs: []string{"BB-0068"}, AppliesTo: lotTypes},
		},
	},
	{
		ID:   "site_calculations",
		Name: "11. Site Calculations",
		Items: []models.ChecklistItem{
			{ID: "11.1", Description: "Building coverage calculations (Max 25%)", CommentIDs: []string{"BB-0066"}, AppliesTo: lotTypes},
			{ID: "11.2", Description: "Green space coverage calculations (Min 40%)", CommentIDs: []string{"BB-0066"}, AppliesTo: lotPoolTypes},
			{ID: "11.3", Description: "Basement coverage calculations (Min 50% perimeter covered)", CommentIDs: []string{"BB-0066"}, AppliesTo: lotTypes},
		},
	},
	{
		ID:   "site_elevations",
		Name: "12. Site Elevations",
		Items: []models.ChecklistItem{
			{ID: "12.1", Description: "FFE shown for all structures", CommentIDs: []string{"BB-0127"}, AppliesTo: lotPoolTypes},
			{ID: "12.2", Description: "Garage elevation shown", CommentIDs: []string{"BB-0128"}, AppliesTo: lotTypes},
			{ID: "12.3", Description: "Basement elevation shown (if applicable)", CommentIDs: []string{"BB-0129"}, AppliesTo: lotTypes},
			{ID: "12.4", Description: "Minimum LFE shown (if applicable)", CommentIDs: []string{"BB-0023"}, AppliesTo: lotPoolTypes},
			{ID: "12.5", Description: "Grades adjacent to home (2% for 10', 8\" below FFE)", CommentIDs: []string{"BB-0071"}, AppliesTo: lotPoolTypes},
		},
	},
	{
		ID:   "signatures_notes",
		Name: "13. Signatures & Notes",
		Items: []models.ChecklistItem{
			{ID: "13.1", Description: "Permit Holder Signature Block signed and dated", CommentIDs: []string{"BB-0049", "BB-0026"}, AppliesTo: stampedPlanTypes},
			{ID: "13.2", Description: "Required general notes provided", CommentIDs: []string{"BB-0041"}, AppliesTo: lotTypes},
			{ID: "13.3", Description: "Driveway as-built survey note (for driveways over 15% slope)", CommentIDs: []string{"BB-0041"}, AppliesTo: transitionalTypes},
		},
	},
	{
		ID:   "special_conditions",
		Name: "14. Special Conditions",
		Items: []models.ChecklistItem{
			{ID: "14.1", Description: "Open space/buffers noted as protected during construction", CommentIDs: []string{"BB-0035", "BB-0074"}, AppliesTo: lotPoolTypes},
			{ID: "14.2", Description: "Water quality riparian buffer shown and labeled", CommentIDs: []string{"BB-0077"}, AppliesTo: lotPoolTypes},
			{ID: "14.3", Description: "Floodplain requirements (if applicable)", CommentIDs: []string{"BB-0023", "BB-0010"}, AppliesTo: lotPoolTypes},
			{ID: "14.4", Description: "Transitional lot checklist completed and submitted", CommentIDs: []string{"BB-0085", "BB-0086", "BB-0087"}, AppliesTo: transitionalTypes},
			{ID: "14.5", Description: "Hillside Protection compliance (if HP lot)", CommentIDs: []string{"BB-0012", "BB-0084"}, AppliesTo: hpOnly},
			{ID: "14.6", Description: "Geotechnical inspection report required (HP lots)", CommentIDs: []string{"BB-0022"}, AppliesTo: hpOnly},
		},
	},
	{
		ID:   "pool_specific",
		Name: "15. Pool Permit Specific",
		Items: []models.ChecklistItem{
			{ID: "15.1", Description: "Review is for grading only (Building & Codes handles pool decking)", CommentIDs: []string{"BB-0014"}, AppliesTo: poolOnly},
			{ID: "15.2", Description: "Fence/gate/pool/spa approval note (Building & Codes required)", CommentIDs: []string{"BB-0030"}, AppliesTo: poolOnly},
			{ID: "15.3", Description: "Pool fence location - not in PUDE or along property line issues", CommentIDs: []string{"BB-0017", "BB-0122", "BB-0123"}, AppliesTo: poolOnly},
			{ID: "15.4", Description: "Pool fence location - not in sewer or other easement", CommentIDs: []string{"BB-0122"}, AppliesTo: poolOnly},
			{ID: "15.5", Description: "Plan shows entire rear yard with grades", CommentIDs: []string{"BB-0097"}, AppliesTo: poolOnly},
			{ID: "15.6", Description: "Pool and decking shown within setbacks", CommentIDs: []string{"BB-0063", "BB-0093"}, AppliesTo: poolOnly},
			{ID: "15.7", Description: "Setbacks correct per approved plat", CommentIDs: []string{"BB-0078"}, AppliesTo: poolOnly},
			{ID: "15.8", Description: "Stormwater does not flow towards house", CommentIDs: []string{"BB-0071"}, AppliesTo: poolOnly},
			{ID: "15.9", Description: "Pool contractor limits of work clearly shown", CommentIDs: []string{"BB-0090", "BB-0098"}, AppliesTo: poolOnly},
			{ID: "15.10", Description: "Code compliant pool fence shown", CommentIDs: []string{"BB-0076"}, AppliesTo: poolOnly},
			{ID: "15.11", Description: "Pool deck paver detail (if applicable)", CommentIDs: []string{"BB-0047"}, AppliesTo: poolOnly},
			{ID: "15.12", Description: "Normal pool elevation at drain location", CommentIDs: []string{"BB-0015"}, AppliesTo: poolOnly},
			{ID: "15.13", Description: "Pool deck elevation not higher than home elevations", CommentIDs: []string{"BB-0016"}, AppliesTo: poolOnly},
			{ID: "15.14", Description: "Floodplain steps completed (if applicable)", CommentIDs: []string{"BB-0099"}, AppliesTo: poolOnly},
		},
	},
	{
		ID:   "fence_specific",
		Name: "16. Fence Permit Specific",
		Items: []models.ChecklistItem{
			{ID: "16.1", Description: "Fence not in public right-of-way (3' from sidewalk/bikeway)", CommentIDs: []string{"BB-0122"}, AppliesTo: fenceOnly},
			{ID: "16.2", Description: "Fence not in recorded easement without authorization", CommentIDs: []string{"BB-0122", "BB-0017"}, AppliesTo: fenceOnly},
			{ID: "16.3", Description: "Fence does not create sight distance issues", CommentIDs: []string{"BB-0122"}, AppliesTo: fenceOnly},
			{ID: "16.4", Description: "Fence location relative to PUDE reviewed", CommentIDs: []string{"BB-0017", "BB-0123"}, AppliesTo: fenceOnly},
			{ID: "16.5", Description: "No trees planted in easements", CommentIDs: []string{"BB-0113"}, AppliesTo: fenceOnly},
			{ID: "16.6", Description: "Fence over utility easement has proper gate for access", CommentIDs: []string{"BB-0123"}, AppliesTo: fenceOnly},
			{ID: "16.7", Description: "Fence does not encompass drainage swale", CommentIDs: []string{"BB-0123"}, AppliesTo: fenceOnly},
			{ID: "16.8", Description: "Maximum 5' encroachment if no existing swale", CommentIDs: []string{"BB-0123"}, AppliesTo: fenceOnly},
		},
	},
}
