package adapter

import "regexp"

var (
	calendarPattern             = regexp.MustCompile(`^(?:.+\.)?Calendar$`)
	gregorianCalendarPattern    = regexp.MustCompile(`^(?:.+\.)?GregorianCalendar$`)
	xmlGregorianCalendarPattern = regexp.MustCompile(`^(?:.+\.)?XMLGregorianCalendar$`)
)

var (
	calendarRead = newSnippet("calendar.read",
		"String {{.name}}TimeZoneStr = in.readString();",
		"if ({{.name}}TimeZoneStr != null) {",
		"{{.name}} = Calendar.getInstance();",
		"{{.name}}.setTimeZone(TimeZone.getTimeZone({{.name}}TimeZoneStr));",
		"{{.name}}.setTimeInMillis(in.readLong());",
		"} else {",
		"{{.name}} = null;",
		"}",
	)
	gregorianCalendarRead = newSnippet("gregorian.read",
		"String {{.name}}TimeZoneStr = in.readString();",
		"if ({{.name}}TimeZoneStr != null) {",
		"{{.name}} = new GregorianCalendar(TimeZone.getTimeZone({{.name}}TimeZoneStr));",
		"{{.name}}.setTimeInMillis(in.readLong());",
		"} else {",
		"{{.name}} = null;",
		"}",
	)
	calendarWrite = newSnippet("calendar.write",
		"if ({{.name}} != null) {",
		"out.writeString({{.name}}.getTimeZone().getID());",
		"out.writeLong({{.name}}.getTimeInMillis());",
		"} else {",
		"out.writeString(null);",
		"}",
	)

	xmlGregorianCalendarRead = newSnippet("xmlgregorian.read",
		"try {",
		"{{.name}} = javax.xml.datatype.DatatypeFactory.newInstance().newXMLGregorianCalendar(in.readString());",
		"} catch (DatatypeConfigurationException dce) {}",
	)
	xmlGregorianCalendarWrite = newSnippet("xmlgregorian.write",
		"out.writeString({{.name}}.toString());",
	)
)

// writeCalendar is shared by every java.util.Calendar flavour: a nullable
// time zone id followed by epoch milliseconds.
func writeCalendar(typeName, fieldName string) string {
	return calendarWrite.render(typeName, fieldName)
}

// Calendar handles java.util.Calendar.
type Calendar struct{}

func (Calendar) Kind() Kind { return KindCalendar }

func (Calendar) Matches(typeName string) bool {
	return calendarPattern.MatchString(typeName)
}

func (Calendar) GenerateRead(typeName, fieldName string) string {
	return calendarRead.render(typeName, fieldName)
}

func (Calendar) GenerateWrite(typeName, fieldName string) string {
	return writeCalendar(typeName, fieldName)
}

// GregorianCalendar handles java.util.GregorianCalendar. It is written like
// any Calendar but constructed directly on read.
type GregorianCalendar struct{}

func (GregorianCalendar) Kind() Kind { return KindGregorianCalendar }

func (GregorianCalendar) Matches(typeName string) bool {
	return gregorianCalendarPattern.MatchString(typeName)
}

func (GregorianCalendar) GenerateRead(typeName, fieldName string) string {
	return gregorianCalendarRead.render(typeName, fieldName)
}

func (GregorianCalendar) GenerateWrite(typeName, fieldName string) string {
	return writeCalendar(typeName, fieldName)
}

// XMLGregorianCalendar handles javax.xml.datatype.XMLGregorianCalendar
// through its lexical string form. A DatatypeConfigurationException on read
// leaves the field untouched.
type XMLGregorianCalendar struct{}

func (XMLGregorianCalendar) Kind() Kind { return KindXMLGregorianCalendar }

func (XMLGregorianCalendar) Matches(typeName string) bool {
	return xmlGregorianCalendarPattern.MatchString(typeName)
}

func (XMLGregorianCalendar) GenerateRead(typeName, fieldName string) string {
	return xmlGregorianCalendarRead.render(typeName, fieldName)
}

func (XMLGregorianCalendar) GenerateWrite(typeName, fieldName string) string {
	return xmlGregorianCalendarWrite.render(typeName, fieldName)
}
