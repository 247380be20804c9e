package i18n

// translations is the compiled table of static UI copy. One entry per key,
// four strings per entry.
var translations = map[string]Text{
	// Navigation
	"nav.home": {
		HU: "Főoldal",
		RO: "Acasă",
		EN: "Home",
		DE: "Startseite",
	},
	"nav.gallery": {
		HU: "Galéria",
		RO: "Galerie",
		EN: "Gallery",
		DE: "Galerie",
	},
	"nav.history": {
		HU: "Történelem",
		RO: "Istorie",
		EN: "History",
		DE: "Geschichte",
	},
	"nav.about": {
		HU: "Rólunk",
		RO: "Despre",
		EN: "About",
		DE: "Über uns",
	},
	// Home page
	"home.title": {
		HU: "Arad Digitális Archívuma",
		RO: "Arhiva Digitală a Aradului",
		EN: "Digital Archive of Arad",
		DE: "Digitales Archiv von Arad",
	},
	"home.subtitle": {
		HU: "Képeslapok és emlékek gyűjteménye",
		RO: "Colecție de cărți poștale și amintiri",
		EN: "A collection of postcards and memories",
		DE: "Eine Sammlung von Postkarten und Erinnerungen",
	},
	"home.intro": {
		HU: "Fedezze fel Arad gazdag történelmét egyedülálló képeslapgyűjteményünkön keresztül. Ez a digitális archívum megőrzi és megosztja a város kulturális örökségét.",
		RO: "Descoperiți istoria bogată a Aradului prin colecția noastră unică de cărți poștale. Această arhivă digitală păstrează și împărtășește patrimoniul cultural al orașului.",
		EN: "Discover the rich history of Arad through our unique collection of postcards. This digital archive preserves and shares the cultural heritage of the city.",
		DE: "Entdecken Sie die reiche Geschichte von Arad durch unsere einzigartige Postkartensammlung. Dieses digitale Archiv bewahrt und teilt das kulturelle Erbe der Stadt.",
	},
	"home.explore": {
		HU: "Galéria felfedezése",
		RO: "Explorează galeria",
		EN: "Explore the Gallery",
		DE: "Galerie erkunden",
	},
	"home.learnMore": {
		HU: "Tudjon meg többet",
		RO: "Aflați mai multe",
		EN: "Learn More",
		DE: "Mehr erfahren",
	},
	// Gallery
	"gallery.title": {
		HU: "Képeslapgyűjtemény",
		RO: "Colecție de cărți poștale",
		EN: "Postcard Collection",
		DE: "Postkartensammlung",
	},
	"gallery.subtitle": {
		HU: "Böngésszen Arad történelmi képeslapjai között",
		RO: "Răsfoiți cărțile poștale istorice ale Aradului",
		EN: "Browse through historic postcards of Arad",
		DE: "Durchstöbern Sie historische Postkarten von Arad",
	},
	"gallery.noItems": {
		HU: "Még nincsenek képeslapok az archívumban.",
		RO: "Nu există încă cărți poștale în arhivă.",
		EN: "No postcards in the archive yet.",
		DE: "Noch keine Postkarten im Archiv.",
	},
	"gallery.year": {
		HU: "Év",
		RO: "An",
		EN: "Year",
		DE: "Jahr",
	},
	"gallery.district": {
		HU: "Kerület",
		RO: "Cartier",
		EN: "District",
		DE: "Bezirk",
	},
	// History
	"history.title": {
		HU: "Arad története",
		RO: "Istoria Aradului",
		EN: "History of Arad",
		DE: "Geschichte von Arad",
	},
	"history.subtitle": {
		HU: "Időutazás a város múltjába",
		RO: "O călătorie în timp prin trecutul orașului",
		EN: "A journey through the city's past",
		DE: "Eine Zeitreise durch die Vergangenheit der Stadt",
	},
	// About
	"about.title": {
		HU: "A projektről",
		RO: "Despre proiect",
		EN: "About the Project",
		DE: "Über das Projekt",
	},
	"about.subtitle": {
		HU: "Módszertan, források és kapcsolat",
		RO: "Metodologie, surse și contact",
		EN: "Methodology, sources, and contact",
		DE: "Methodik, Quellen und Kontakt",
	},
	"about.mission.title": {
		HU: "Küldetésünk",
		RO: "Misiunea noastră",
		EN: "Our Mission",
		DE: "Unsere Mission",
	},
	"about.mission.text": {
		HU: "Az ArchArad célja Arad város kulturális örökségének digitális megőrzése és hozzáférhetővé tétele a nagyközönség számára. Gyűjteményünk folyamatosan bővül új anyagokkal.",
		RO: "Misiunea ArchArad este de a păstra digital și de a face accesibil publicului larg patrimoniul cultural al orașului Arad. Colecția noastră se extinde continuu cu materiale noi.",
		EN: "ArchArad aims to digitally preserve and make accessible the cultural heritage of the city of Arad. Our collection is continuously expanding with new materials.",
		DE: "ArchArad zielt darauf ab, das kulturelle Erbe der Stadt Arad digital zu bewahren und der Öffentlichkeit zugänglich zu machen. Unsere Sammlung wird ständig mit neuen Materialien erweitert.",
	},
	"about.methodology.title": {
		HU: "Módszertan",
		RO: "Metodologie",
		EN: "Methodology",
		DE: "Methodik",
	},
	"about.methodology.text": {
		HU: "A képeslapokat nagy felbontásban digitalizáljuk, metaadatokkal látjuk el, és négy nyelven dokumentáljuk. Minden anyagot gondosan ellenőrzünk és katalogizálunk.",
		RO: "Cărțile poștale sunt digitalizate în rezoluție înaltă, prevăzute cu metadate și documentate în patru limbi. Toate materialele sunt verificate și catalogate cu atenție.",
		EN: "Postcards are digitized in high resolution, provided with metadata, and documented in four languages. All materials are carefully verified and catalogued.",
		DE: "Die Postkarten werden in hoher Auflösung digitalisiert, mit Metadaten versehen und in vier Sprachen dokumentiert. Alle Materialien werden sorgfältig geprüft und katalogisiert.",
	},
	"about.sources.title": {
		HU: "Források",
		RO: "Surse",
		EN: "Sources",
		DE: "Quellen",
	},
	"about.sources.text": {
		HU: "Gyűjteményünk magángyűjtőktől, múzeumoktól és archívumoktól származó anyagokat tartalmaz. Minden forrást megfelelően hivatkozunk és dokumentálunk.",
		RO: "Colecția noastră conține materiale de la colecționari privați, muzee și arhive. Toate sursele sunt citate și documentate corespunzător.",
		EN: "Our collection contains materials from private collectors, museums, and archives. All sources are properly cited and documented.",
		DE: "Unsere Sammlung enthält Materialien von Privatsammlern, Museen und Archiven. Alle Quellen werden ordnungsgemäß zitiert und dokumentiert.",
	},
	"about.contact.title": {
		HU: "Kapcsolat",
		RO: "Contact",
		EN: "Contact",
		DE: "Kontakt",
	},
	"about.contact.text": {
		HU: "Ha kérdése van vagy hozzá szeretne járulni az archívumhoz, kérjük, lépjen kapcsolatba velünk.",
		RO: "Dacă aveți întrebări sau doriți să contribuiți la arhivă, vă rugăm să ne contactați.",
		EN: "If you have questions or would like to contribute to the archive, please contact us.",
		DE: "Wenn Sie Fragen haben oder zum Archiv beitragen möchten, kontaktieren Sie uns bitte.",
	},
	// Admin
	"admin.title": {
		HU: "Adminisztráció",
		RO: "Administrare",
		EN: "Administration",
		DE: "Verwaltung",
	},
	"admin.upload": {
		HU: "Új képeslap feltöltése",
		RO: "Încarcă carte poștală nouă",
		EN: "Upload New Postcard",
		DE: "Neue Postkarte hochladen",
	},
	"admin.save": {
		HU: "Mentés",
		RO: "Salvează",
		EN: "Save",
		DE: "Speichern",
	},
	"admin.cancel": {
		HU: "Mégse",
		RO: "Anulează",
		EN: "Cancel",
		DE: "Abbrechen",
	},
	"admin.login": {
		HU: "Bejelentkezés",
		RO: "Autentificare",
		EN: "Login",
		DE: "Anmelden",
	},
	"admin.logout": {
		HU: "Kijelentkezés",
		RO: "Deconectare",
		EN: "Logout",
		DE: "Abmelden",
	},
	"admin.email": {
		HU: "E-mail cím",
		RO: "Adresă de email",
		EN: "Email address",
		DE: "E-Mail-Adresse",
	},
	"admin.password": {
		HU: "Jelszó",
		RO: "Parolă",
		EN: "Password",
		DE: "Passwort",
	},
	// Footer
	"footer.copyright": {
		HU: "© 2024 ArchArad. Minden jog fenntartva.",
		RO: "© 2024 ArchArad. Toate drepturile rezervate.",
		EN: "© 2024 ArchArad. All rights reserved.",
		DE: "© 2024 ArchArad. Alle Rechte vorbehalten.",
	},
}
