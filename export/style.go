package export

const screenStyle = `body { font-family: Arial, sans-serif; line-height: 1.6; padding: 40px; max-width: 800px; margin: 0 auto; }
pre { background-color: #f6f8fa; padding: 16px; border-radius: 6px; overflow-x: auto; }
blockquote { color: #666; border-left: 4px solid #ddd; padding-left: 1em; margin: 1em 0; }
table { border-collapse: collapse; width: 100%; margin: 16px 0; }
th, td { border: 1px solid #ddd; padding: 8px; }
code { font-family: Monaco, monospace; background-color: #f6f8fa; padding: 2px 4px; border-radius: 3px; }
h1, h2, h3, h4, h5, h6 { margin-top: 1.5em; margin-bottom: 0.5em; }
p { margin: 1em 0; }
ul, ol { padding-left: 2em; margin: 1em 0; }
img { max-width: 100%; height: auto; }`

const printStyle = `@media print {
  @page { size: A4; margin: 0; }
  body { margin: 0; -webkit-print-color-adjust: exact; print-color-adjust: exact; }
}
body { padding: 40px; background-color: white; font-family: Arial, sans-serif; line-height: 1.6; max-width: 210mm; margin: 0 auto; }
pre { background-color: #f6f8fa !important; padding: 16px; border-radius: 6px; overflow-x: auto; }
blockquote { color: #666; border-left: 4px solid #ddd; padding-left: 1em; margin: 1em 0; }
table { border-collapse: collapse; width: 100%; margin: 16px 0; page-break-inside: avoid; }
th, td { border: 1px solid #ddd; padding: 8px; }
code { font-family: Monaco, monospace; background-color: #f6f8fa; padding: 2px 4px; border-radius: 3px; }
h1, h2, h3, h4, h5, h6 { margin-top: 1.5em; margin-bottom: 0.5em; page-break-after: avoid; }
p { margin: 1em 0; }
ul, ol { padding-left: 2em; margin: 1em 0; }
img { max-width: 100%; height: auto; page-break-inside: avoid; }`
