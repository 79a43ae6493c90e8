package katiba

import (
	"fmt"
	"strings"
)

// articleSummary pairs the citizen-readable explanation of an article with
// its formal one-line description.
type articleSummary struct {
	Simple   string
	Detailed string
}

// summaryFor returns the curated summary for an article, falling back to a
// heuristic one-liner built from the article text.
func summaryFor(number, text string) string {
	key := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	if s, ok := articleSummaries[key]; ok {
		return s.Simple
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "right"):
		return fmt.Sprintf("Article %s guarantees certain rights to Kenyan citizens.", number)
	case strings.Contains(lower, "shall") || strings.Contains(lower, "must"):
		return fmt.Sprintf("Article %s imposes obligations on the government or citizens.", number)
	}
	return fmt.Sprintf("Article %s of the Constitution of Kenya.", number)
}

// articleSummaries is the curated table for the articles the audit report
// cites most: sovereignty and values, the Bill of Rights, leadership and
// integrity, and the public-finance chapter.
var articleSummaries = map[string]articleSummary{
	"1":   {"All power belongs to the people of Kenya. The government gets its authority from you.", "Sovereignty of the people and how it can be exercised."},
	"10":  {"Lists the values that should guide all government actions: honesty, fairness, participation, and justice.", "National values and principles of governance that bind all state organs."},
	"19":  {"The Bill of Rights is for everyone and must be respected by all.", "Application of Bill of Rights to all persons and interpretation."},
	"20":  {"The government must apply the Bill of Rights to everyone.", "Application of Bill of Rights."},
	"21":  {"The government must make laws to protect your rights.", "Implementation of rights and fundamental freedoms."},
	"22":  {"You can go to court if your rights are violated.", "Enforcement of Bill of Rights through courts."},
	"23":  {"Courts can give you justice when your rights are violated.", "Authority of courts to uphold and enforce the Bill of Rights."},
	"24":  {"Some rights can be limited, but only if necessary and fair.", "Limitation of rights and fundamental freedoms."},
	"25":  {"Some rights can never be taken away, even in emergencies.", "Fundamental rights that may not be limited."},
	"26":  {"Every person has the right to life.", "Right to life and protection."},
	"27":  {"Everyone is equal before the law and must be treated fairly.", "Equality and freedom from discrimination."},
	"28":  {"Every person has dignity and must be respected.", "Human dignity."},
	"29":  {"You have the right to freedom and security.", "Freedom and security of the person."},
	"30":  {"You cannot be made a slave or forced to work.", "Freedom from slavery, servitude and forced labour."},
	"31":  {"You have the right to privacy in your home and communications.", "Privacy."},
	"32":  {"You have freedom of religion and belief.", "Freedom of conscience, religion, belief and opinion."},
	"33":  {"You have freedom to express yourself and access information.", "Freedom of expression."},
	"34":  {"The media is free and independent.", "Freedom of the media."},
	"35":  {"You have the right to get information from the government.", "Access to information."},
	"36":  {"You can form or join any association or group.", "Freedom of association."},
	"37":  {"You can peacefully protest, demonstrate, and picket.", "Assembly, demonstration, picketing and petition."},
	"38":  {"You have political rights including voting and running for office.", "Political rights."},
	"39":  {"You have the right to move and live anywhere in Kenya.", "Freedom of movement and residence."},
	"40":  {"You have the right to own property.", "Protection of right to property."},
	"41":  {"Workers have rights including fair pay and safe conditions.", "Labour relations."},
	"42":  {"You have the right to a clean and healthy environment.", "Right to a clean and healthy environment."},
	"43":  {"You have rights to healthcare, food, water, housing, education, and social security.", "Economic and social rights."},
	"44":  {"Your language and culture must be respected.", "Language and culture."},
	"45":  {"Families are protected by the state.", "Family."},
	"46":  {"Consumers have rights to quality goods and services.", "Consumer rights."},
	"47":  {"You have the right to fair administrative action.", "Fair administrative action."},
	"48":  {"You have the right to access justice.", "Access to justice."},
	"49":  {"You have rights when arrested or detained.", "Rights of arrested persons."},
	"50":  {"You have the right to a fair trial.", "Fair hearing."},
	"51":  {"You have rights if you are held in custody.", "Rights of persons detained, held in custody or imprisoned."},
	"52":  {"This part explains how the Bill of Rights works.", "Interpretation of this Part."},
	"53":  {"Children have special rights and protections.", "Rights of the child."},
	"54":  {"Persons with disabilities have equal rights.", "Rights of persons with disabilities."},
	"55":  {"Youth have rights including access to relevant education.", "Rights of the youth."},
	"56":  {"Minorities and marginalized groups have special protections.", "Rights of minorities and marginalized groups."},
	"57":  {"Older members of society have the right to care and assistance.", "Rights of older members of society."},
	"58":  {"Emergency powers are limited and must respect rights.", "Derogation from rights and fundamental freedoms during emergency."},
	"73":  {"Leaders must act with integrity and use authority for public good.", "Responsibilities of leadership."},
	"74":  {"Leaders must follow a code of conduct.", "Oath of office of State officers."},
	"75":  {"Leaders must avoid conflicts of interest.", "Conduct of State officers."},
	"76":  {"Financial integrity requirements for leaders.", "Financial probity of State officers."},
	"77":  {"Restrictions on public officers engaging in other gainful employment.", "Restriction on activities of State officers."},
	"78":  {"Citizenship and leadership qualifications.", "Citizenship and leadership."},
	"79":  {"Legislation to establish the Ethics and Anti-Corruption Commission.", "Legislation on leadership."},
	"80":  {"Parliament consists of the National Assembly and the Senate.", "Establishment of Parliament."},
	"201": {"Government money must be managed with openness, participation, and fairness.", "Principles of public finance."},
	"202": {"County governments get a share of national revenue.", "Equitable sharing of national revenue."},
	"203": {"Commission on Revenue Allocation determines county shares.", "Equitable share and other financial laws."},
	"204": {"Fund for marginalized areas.", "Equalisation Fund."},
	"205": {"Consultation on division of revenue.", "Consultation on division of revenue."},
	"206": {"Emergency fund for unforeseen circumstances.", "Contingencies Fund."},
	"207": {"Consolidated Fund and other public funds.", "Revenue Funds for national and county governments."},
	"208": {"Control of public money.", "Control of public money."},
	"209": {"Power to impose taxes and charges.", "Power to impose taxes and charges."},
	"210": {"Imposition of tax.", "Imposition of tax."},
	"211": {"Borrowing by national government.", "Borrowing by national government."},
	"212": {"Borrowing by counties.", "Borrowing by counties."},
	"213": {"Loan guarantees by national government.", "Loan guarantees by national government."},
	"214": {"Public debt management.", "Public debt."},
	"215": {"Central Bank of Kenya.", "Central Bank of Kenya."},
	"216": {"Financial offices and institutions.", "Financial offices and institutions."},
	"217": {"Procurement of public goods and services.", "Procurement of public goods and services."},
	"218": {"Financial control and accountability.", "Financial control."},
	"219": {"Accounts and audit of public entities.", "Accounts and audit of public entities."},
	"220": {"Procedures for dealing with public finance.", "Procedure for dealing with finance bills."},
	"221": {"Budgets and spending.", "Budgets."},
	"222": {"Supplementary budgets.", "Supplementary appropriation."},
	"223": {"Authority to spend before approval by Parliament.", "Authority to spend before appropriation."},
	"224": {"Unspent funds.", "Unspent funds."},
	"225": {"Controller of Budget.", "Controller of Budget."},
	"226": {"Auditor-General.", "Auditor-General."},
	"227": {"Reports of Controller of Budget and Auditor-General.", "Reports of Controller of Budget and Auditor-General."},
	"228": {"Legislation on public finance.", "Legislation on public finance."},
	"229": {"Public service values and principles.", "Values and principles of public service."},
	"230": {"The public service.", "The public service."},
	"231": {"Teachers Service Commission.", "Teachers Service Commission."},
	"232": {"Values and principles of public service.", "Values and principles of public service."},
}
