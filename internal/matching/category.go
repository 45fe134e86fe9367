package matching

// Category is a professional category assigned to talents and offers.
type Category string

const (
	CategoryDeveloppeur            Category = "DEVELOPPEUR"
	CategoryChefDeProjet           Category = "CHEF_DE_PROJET"
	CategorySupportTechnicien      Category = "SUPPORT_TECHNICIEN"
	CategoryHelpdeskN1             Category = "HELPDESK_N1"
	CategoryHelpdeskN2             Category = "HELPDESK_N2"
	CategoryIngenieurSystemeReseau Category = "INGENIEUR_SYSTEME_RESEAU"
	CategoryIngenieurCloud         Category = "INGENIEUR_CLOUD"
	CategoryDataBI                 Category = "DATA_BI"
	CategoryDevopsSRE              Category = "DEVOPS_SRE"
	CategoryCybersecurite          Category = "CYBERSECURITE"
	CategoryConsultantFonctionnel  Category = "CONSULTANT_FONCTIONNEL"
	CategoryArchitecte             Category = "ARCHITECTE"
	CategoryScrumMaster            Category = "SCRUM_MASTER"
	CategoryProductOwner           Category = "PRODUCT_OWNER"
	CategoryAutre                  Category = "AUTRE"
)

// AllCategories fixes the enumeration order. Classification ties resolve to
// the earliest entry, so the order is part of the observable behavior and
// must not be reshuffled.
var AllCategories = []Category{
	CategoryDeveloppeur,
	CategoryChefDeProjet,
	CategorySupportTechnicien,
	CategoryHelpdeskN1,
	CategoryHelpdeskN2,
	CategoryIngenieurSystemeReseau,
	CategoryIngenieurCloud,
	CategoryDataBI,
	CategoryDevopsSRE,
	CategoryCybersecurite,
	CategoryConsultantFonctionnel,
	CategoryArchitecte,
	CategoryScrumMaster,
	CategoryProductOwner,
	CategoryAutre,
}

// Mobility is the work-location arrangement of a talent or an offer.
type Mobility string

const (
	MobilityFullRemote Mobility = "FULL_REMOTE"
	MobilityHybrid     Mobility = "HYBRIDE"
	MobilityOnSite     Mobility = "SUR_SITE"
	MobilityFlexible   Mobility = "FLEXIBLE"
	MobilityMultiSite  Mobility = "MULTI_SITE"
)

// Availability is how soon a talent can start a mission.
type Availability string

const (
	AvailabilityImmediate     Availability = "IMMEDIATE"
	AvailabilityWithin15Days  Availability = "SOUS_15_JOURS"
	AvailabilityWithin1Month  Availability = "SOUS_1_MOIS"
	AvailabilityWithin2Months Availability = "SOUS_2_MOIS"
	AvailabilityWithin3Months Availability = "SOUS_3_MOIS"
	AvailabilityUnavailable   Availability = "NON_DISPONIBLE"
)
